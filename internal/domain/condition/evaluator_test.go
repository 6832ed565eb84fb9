package condition_test

import (
	"testing"

	"github.com/KirkDiggler/attribute-engine/internal/domain/condition"
	"github.com/KirkDiggler/attribute-engine/internal/domain/entity"
	entitymocks "github.com/KirkDiggler/attribute-engine/internal/domain/entity/mocks"
	"github.com/KirkDiggler/attribute-engine/internal/domain/item"
	itemmocks "github.com/KirkDiggler/attribute-engine/internal/domain/item/mocks"
	atterr "github.com/KirkDiggler/attribute-engine/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EvaluatorTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockParser  *itemmocks.MockParser
	mockLeveler *entitymocks.MockLeveler
	evaluator   *condition.Evaluator
	player      *entity.Character
	sword       *item.Basic
}

func (s *EvaluatorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockParser = itemmocks.NewMockParser(s.mockCtrl)
	s.mockLeveler = entitymocks.NewMockLeveler(s.mockCtrl)

	evaluator, err := condition.NewEvaluator(&condition.EvaluatorConfig{
		Parser:  s.mockParser,
		Leveler: s.mockLeveler,
	})
	s.Require().NoError(err)
	s.evaluator = evaluator

	s.player = &entity.Character{ID: "player-1", Kind: entity.KindPlayer}
	s.sword = &item.Basic{Key: "sword", Name: "Sword"}
}

func (s *EvaluatorTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEvaluatorTestSuite(t *testing.T) {
	suite.Run(t, new(EvaluatorTestSuite))
}

func (s *EvaluatorTestSuite) TestLevelGate() {
	tests := []struct {
		name        string
		required    int
		hasRequired bool
		level       int
		leveled     bool
		expected    bool
	}{
		{name: "requires 10, entity 5", required: 10, hasRequired: true, level: 5, leveled: true, expected: false},
		{name: "requires 10, entity 10", required: 10, hasRequired: true, level: 10, leveled: true, expected: true},
		{name: "requires 10, entity 11", required: 10, hasRequired: true, level: 11, leveled: true, expected: true},
		{name: "requires 10, entity not applicable", required: 10, hasRequired: true, leveled: false, expected: true},
		{name: "no requirement, entity 1", hasRequired: false, level: 1, leveled: true, expected: true},
		{name: "requires 0, entity 0", required: 0, hasRequired: true, level: 0, leveled: true, expected: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockParser.EXPECT().RequiredLevel(s.sword).Return(tt.required, tt.hasRequired)
			s.mockLeveler.EXPECT().EffectiveLevel(s.player).Return(tt.level, tt.leveled)

			got := s.evaluator.Evaluate(condition.Context{
				Entity: s.player,
				Site:   condition.AllSites(),
				Source: s.sword,
			})
			s.Equal(tt.expected, got)
		})
	}
}

func (s *EvaluatorTestSuite) TestNilEntitySkipsEntityChecks() {
	s.mockParser.EXPECT().RequiredLevel(s.sword).Return(99, true)

	s.True(s.evaluator.Evaluate(condition.Context{
		Site:   condition.AllSites(),
		Source: s.sword,
	}))
}

func (s *EvaluatorTestSuite) TestNilSourcePasses() {
	s.True(s.evaluator.Evaluate(condition.Context{Entity: s.player, Site: condition.Site("chest")}))
}

func (s *EvaluatorTestSuite) TestSiteRuleOnlyRunsForSpecificSite() {
	s.Run("all sites skips slot restriction", func() {
		s.mockParser.EXPECT().RequiredLevel(s.sword).Return(0, false)
		s.mockLeveler.EXPECT().EffectiveLevel(s.player).Return(1, true)

		s.True(s.evaluator.Evaluate(condition.Context{Entity: s.player, Site: condition.AllSites(), Source: s.sword}))
	})

	s.Run("declared site matches", func() {
		s.mockParser.EXPECT().RequiredLevel(s.sword).Return(0, false)
		s.mockLeveler.EXPECT().EffectiveLevel(s.player).Return(1, true)
		s.mockParser.EXPECT().Sites(s.sword).Return([]string{"Main-Hand", "off-hand"})

		s.True(s.evaluator.Evaluate(condition.Context{Entity: s.player, Site: condition.Site("main-hand"), Source: s.sword}))
	})

	s.Run("declared site does not match", func() {
		s.mockParser.EXPECT().RequiredLevel(s.sword).Return(0, false)
		s.mockLeveler.EXPECT().EffectiveLevel(s.player).Return(1, true)
		s.mockParser.EXPECT().Sites(s.sword).Return([]string{"main-hand"})

		s.False(s.evaluator.Evaluate(condition.Context{Entity: s.player, Site: condition.Site("chest"), Source: s.sword}))
	})

	s.Run("no declared sites", func() {
		s.mockParser.EXPECT().RequiredLevel(s.sword).Return(0, false)
		s.mockLeveler.EXPECT().EffectiveLevel(s.player).Return(1, true)
		s.mockParser.EXPECT().Sites(s.sword).Return(nil)

		s.True(s.evaluator.Evaluate(condition.Context{Entity: s.player, Site: condition.Site("chest"), Source: s.sword}))
	})
}

func (s *EvaluatorTestSuite) TestFacts() {
	s.mockParser.EXPECT().RequiredLevel(s.sword).Return(8, true)
	s.mockLeveler.EXPECT().EffectiveLevel(s.player).Return(0, false)

	facts := s.evaluator.Facts(condition.Context{Entity: s.player, Source: s.sword})

	s.Equal(condition.Level(8), facts.SourceLevel)
	s.Equal(condition.NotApplicable, facts.EntityLevel)
	s.Equal("none", facts.EntityLevel.String())
	s.Equal("8", facts.SourceLevel.String())
}

func (s *EvaluatorTestSuite) TestRegisterDuplicateRuleIsConfigurationError() {
	err := s.evaluator.Register(condition.NewLevelRule(s.mockParser, s.mockLeveler))

	s.Require().Error(err)
	s.True(atterr.IsConfiguration(err))
	s.Equal("level", atterr.GetMeta(err)["rule"])
}

type denyRule struct{ site string }

func (r denyRule) Name() string { return "deny-" + r.site }

func (r denyRule) AppliesTo(site condition.SiteFilter) bool { return site.Name() == r.site }

func (r denyRule) Check(condition.Context) bool { return false }

func (s *EvaluatorTestSuite) TestCustomRuleRestrictedToSite() {
	s.Require().NoError(s.evaluator.Register(denyRule{site: "boots"}))

	s.mockParser.EXPECT().RequiredLevel(s.sword).Return(0, false).Times(2)
	s.mockLeveler.EXPECT().EffectiveLevel(s.player).Return(1, true).Times(2)
	s.mockParser.EXPECT().Sites(s.sword).Return(nil).Times(2)

	s.False(s.evaluator.Evaluate(condition.Context{Entity: s.player, Site: condition.Site("boots"), Source: s.sword}))
	s.True(s.evaluator.Evaluate(condition.Context{Entity: s.player, Site: condition.Site("helmet"), Source: s.sword}))
}

func TestNewEvaluator_RequiresParser(t *testing.T) {
	_, err := condition.NewEvaluator(&condition.EvaluatorConfig{})

	require.Error(t, err)
	assert.True(t, atterr.IsConfiguration(err))
}

func TestEvaluator_WithLoreParser(t *testing.T) {
	evaluator, err := condition.NewEvaluator(&condition.EvaluatorConfig{
		Parser: item.NewLoreParser(nil),
	})
	require.NoError(t, err)

	chestplate := &item.Basic{Key: "chestplate", Lore: []string{"Defense: 3", "Level Requirement: 8", "Slot: chest"}}
	player := &entity.Character{ID: "p", Kind: entity.KindPlayer, Level: 10}
	zombie := &entity.Character{ID: "z", Kind: entity.KindMob, Level: 1}

	assert.True(t, evaluator.Evaluate(condition.Context{Entity: player, Site: condition.Site("chest"), Source: chestplate}))
	assert.False(t, evaluator.Evaluate(condition.Context{Entity: player, Site: condition.Site("main-hand"), Source: chestplate}))

	player.Level = 5
	assert.False(t, evaluator.Evaluate(condition.Context{Entity: player, Site: condition.AllSites(), Source: chestplate}))
	assert.True(t, evaluator.Evaluate(condition.Context{Entity: zombie, Site: condition.AllSites(), Source: chestplate}))
}

func TestSiteFilter(t *testing.T) {
	all := condition.AllSites()
	chest := condition.Site("chest")

	assert.True(t, all.IsAll())
	assert.True(t, all.Matches("anything"))
	assert.Equal(t, "ALL", all.String())
	assert.True(t, condition.Site("").IsAll())
	assert.True(t, condition.SiteFilter{}.IsAll())

	assert.False(t, chest.IsAll())
	assert.True(t, chest.Matches("chest"))
	assert.False(t, chest.Matches("boots"))
	assert.Equal(t, "chest", chest.Name())
}
