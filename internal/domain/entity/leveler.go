package entity

//go:generate mockgen -destination=mocks/mock_leveler.go -package=mocks github.com/KirkDiggler/attribute-engine/internal/domain/entity Leveler

// Leveler resolves an entity's effective level. The bool is false for entity
// kinds that have no level, which the condition evaluator treats as
// "not applicable".
type Leveler interface {
	EffectiveLevel(e Entity) (int, bool)
}

// LevelerFunc adapts a function to Leveler
type LevelerFunc func(e Entity) (int, bool)

func (f LevelerFunc) EffectiveLevel(e Entity) (int, bool) {
	return f(e)
}

// KindLeveler levels players that implement Leveled; every other kind is not
// applicable
type KindLeveler struct{}

func (KindLeveler) EffectiveLevel(e Entity) (int, bool) {
	if e == nil || e.GetKind() != KindPlayer {
		return 0, false
	}
	leveled, ok := e.(Leveled)
	if !ok {
		return 0, false
	}
	return leveled.GetLevel(), true
}

// ChainLeveler asks each leveler in turn and returns the first answer. A level
// plugin that overrides vanilla experience goes before KindLeveler.
type ChainLeveler []Leveler

func (c ChainLeveler) EffectiveLevel(e Entity) (int, bool) {
	for _, l := range c {
		if level, ok := l.EffectiveLevel(e); ok {
			return level, true
		}
	}
	return 0, false
}
