package effect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/fightsim/internal/game/effect"
)

func TestTable_Value_UnknownIsZero(t *testing.T) {
	var tbl effect.Table
	assert.Equal(t, 0, tbl.Value(effect.Burn))
	tbl = effect.Table{{Code: effect.HP, Value: 10}}
	assert.Equal(t, 0, tbl.Value("not_a_code"))
}

func TestTable_Value_LastMatchWins(t *testing.T) {
	tbl := effect.Table{
		{Code: string(effect.Mining), Value: -10},
		{Code: effect.HP, Value: 5},
		{Code: string(effect.Mining), Value: -25},
	}
	assert.Equal(t, -25, tbl.Value("mining"))
	assert.Equal(t, 5, tbl.Value(effect.HP))
}

func TestTable_With_DoesNotMutate(t *testing.T) {
	base := effect.Table{{Code: effect.Haste, Value: 5}}
	over := base.With(effect.Effect{Code: effect.Haste, Value: 20})
	assert.Equal(t, 5, base.Value(effect.Haste))
	assert.Equal(t, 20, over.Value(effect.Haste))
	assert.Len(t, base, 1)
}

func TestSum_AddsByCode(t *testing.T) {
	a := effect.Table{{Code: "attack_fire", Value: 10}, {Code: effect.HP, Value: 20}}
	b := effect.Table{{Code: "attack_fire", Value: 5}, {Code: effect.CriticalStrike, Value: 3}}
	sum := effect.Sum(a, b)
	assert.Equal(t, 15, sum.Value("attack_fire"))
	assert.Equal(t, 20, sum.Value(effect.HP))
	assert.Equal(t, 3, sum.Value(effect.CriticalStrike))
	assert.Len(t, sum, 3)
	assert.Equal(t, "attack_fire", sum[0].Code, "codes keep first-occurrence order")
}

func TestSum_UsesResolvedValuePerTable(t *testing.T) {
	a := effect.Table{{Code: effect.Dmg, Value: 1}, {Code: effect.Dmg, Value: 7}}
	b := effect.Table{{Code: effect.Dmg, Value: 3}}
	assert.Equal(t, 10, effect.Sum(a, b).Value(effect.Dmg))
}

func TestSum_Property_EqualsSumOfValues(t *testing.T) {
	codes := []string{effect.HP, effect.Dmg, effect.Burn, "res_air"}
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 5).Draw(rt, "tables")
		tables := make([]effect.Table, n)
		for i := range tables {
			m := rapid.MapOf(rapid.SampledFrom(codes), rapid.IntRange(-50, 50)).Draw(rt, "table")
			tables[i] = effect.FromMap(m)
		}
		sum := effect.Sum(tables...)
		for _, code := range codes {
			want := 0
			for _, tbl := range tables {
				want += tbl.Value(code)
			}
			assert.Equal(rt, want, sum.Value(code), "code %q", code)
		}
	})
}

func TestDamageType_Codes(t *testing.T) {
	tests := []struct {
		d                            effect.DamageType
		attack, dmg, boost, res, str string
	}{
		{effect.Fire, "attack_fire", "dmg_fire", "boost_dmg_fire", "res_fire", "fire"},
		{effect.Earth, "attack_earth", "dmg_earth", "boost_dmg_earth", "res_earth", "earth"},
		{effect.Water, "attack_water", "dmg_water", "boost_dmg_water", "res_water", "water"},
		{effect.Air, "attack_air", "dmg_air", "boost_dmg_air", "res_air", "air"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.attack, tc.d.AttackCode())
		assert.Equal(t, tc.dmg, tc.d.DamageCode())
		assert.Equal(t, tc.boost, tc.d.BoostDamageCode())
		assert.Equal(t, tc.res, tc.d.ResistanceCode())
		assert.Equal(t, tc.str, tc.d.String())
		parsed, ok := effect.ParseDamageType(tc.str)
		require.True(t, ok)
		assert.Equal(t, tc.d, parsed)
	}
	_, ok := effect.ParseDamageType("shadow")
	assert.False(t, ok)
}

func TestTable_DamageIncrease_IsAdditive(t *testing.T) {
	tbl := effect.Table{
		{Code: effect.Dmg, Value: 5},
		{Code: "dmg_water", Value: 10},
		{Code: "boost_dmg_water", Value: 12},
		{Code: "dmg_fire", Value: 100},
	}
	assert.Equal(t, 27, tbl.DamageIncrease(effect.Water))
	assert.Equal(t, 105, tbl.DamageIncrease(effect.Fire))
	assert.Equal(t, 5, tbl.DamageIncrease(effect.Air))
}

func TestTable_Accessors(t *testing.T) {
	tbl := effect.Table{
		{Code: effect.HP, Value: 100},
		{Code: effect.BoostHP, Value: 20},
		{Code: effect.CriticalStrike, Value: 15},
		{Code: effect.Burn, Value: 8},
		{Code: effect.Poison, Value: 4},
		{Code: effect.Lifesteal, Value: 30},
		{Code: effect.Haste, Value: 10},
		{Code: effect.Reconstitution, Value: 12},
		{Code: effect.Corrupted, Value: 5},
		{Code: effect.Healing, Value: 7},
		{Code: effect.Restore, Value: 60},
		{Code: effect.Initiative, Value: 40},
		{Code: "res_earth", Value: 25},
		{Code: "attack_air", Value: 18},
		{Code: "woodcutting", Value: -10},
	}
	assert.Equal(t, 120, tbl.Health())
	assert.Equal(t, 15, tbl.CriticalStrike())
	assert.Equal(t, 8, tbl.Burn())
	assert.Equal(t, 4, tbl.Poison())
	assert.Equal(t, 30, tbl.Lifesteal())
	assert.Equal(t, 10, tbl.Haste())
	assert.Equal(t, 12, tbl.Reconstitution())
	assert.Equal(t, 5, tbl.Corrupted())
	assert.Equal(t, 7, tbl.Healing())
	assert.Equal(t, 60, tbl.Restore())
	assert.Equal(t, 40, tbl.Initiative())
	assert.Equal(t, 25, tbl.Resistance(effect.Earth))
	assert.Equal(t, 18, tbl.Attack(effect.Air))
	assert.Equal(t, 0, tbl.Attack(effect.Fire))
	assert.Equal(t, -10, tbl.SkillCooldownReduction(effect.Woodcutting))
	assert.Equal(t, 0, tbl.SkillCooldownReduction(effect.Mining))
}
