package scenegraph

// element is the base of every scene-graph facade: one document subtree
// bound to the set of correlated engine materials, plus the change
// notification hook fired after every completed write. The document is
// the single source of truth for reads; writes fan out to every member
// of the correlated set first, then to the document, then notify.
type element struct {
	onUpdate   func()
	correlated *CorrelatedSet
	logger     Logger
}

func makeElement(onUpdate func(), correlated *CorrelatedSet, logger Logger) element {
	return element{
		onUpdate:   onUpdate,
		correlated: correlated,
		logger:     ensureLogger(logger),
	}
}

// bound reports whether this facade has at least one correlated engine
// material. A detached facade never writes engine-side.
func (e *element) bound() bool {
	return e.correlated != nil && e.correlated.Len() > 0
}

func (e *element) eachHandle(fn func(h MaterialHandle)) {
	if e.correlated == nil {
		return
	}
	e.correlated.Each(fn)
}

// notify fires the external change notification exactly once. Callers
// invoke it after both the engine-side and document-side writes landed,
// so the callback observes post-write state.
func (e *element) notify() {
	if e.onUpdate != nil {
		e.onUpdate()
	}
}

// resolveSlot normalizes one texture slot at construction time. A slot is
// considered bound only when the document declares a reference AND the
// representative engine material carries a live texture for it; in every
// other case the document reference is forced to the sentinel. The rest
// of the set is then cross-checked against the representative, and any
// disagreement is reported as an informational diagnostic.
func (e *element) resolveSlot(info *TextureInfoDef, usage TextureUsage) TextureHandle {
	rep := e.correlated.Representative()
	live := rep.Texture(usage)

	bound := live
	if info.Index == SentinelIndex || live == nil {
		info.Index = SentinelIndex
		bound = nil
	}

	e.correlated.Each(func(h MaterialHandle) {
		if h == rep {
			return
		}
		if h.Texture(usage) != live {
			e.logger.Warnf("correlated materials disagree on %s texture", usage)
		}
	})

	return bound
}
