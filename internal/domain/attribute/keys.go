package attribute

// Key identifies one attribute in a Set. The vocabulary is open: consumers may
// attach any key, the constants below are the ones the lore parser knows.
type Key string

const (
	KeyAttack         Key = "attack"
	KeyDefense        Key = "defense"
	KeyHealth         Key = "health"
	KeyHealthRegen    Key = "health_regen"
	KeyCritRate       Key = "crit_rate"
	KeyCritDamage     Key = "crit_damage"
	KeyHitRate        Key = "hit_rate"
	KeyDodge          Key = "dodge"
	KeyLifeSteal      Key = "life_steal"
	KeyArmorPierce    Key = "armor_pierce"
	KeyReflection     Key = "reflection"
	KeyMovementSpeed  Key = "movement_speed"
	KeyAttackSpeed    Key = "attack_speed"
	KeyExperienceRate Key = "experience_rate"
)

// Vocabulary lists the built-in keys
var Vocabulary = []Key{
	KeyAttack, KeyDefense, KeyHealth, KeyHealthRegen, KeyCritRate, KeyCritDamage,
	KeyHitRate, KeyDodge, KeyLifeSteal, KeyArmorPierce, KeyReflection,
	KeyMovementSpeed, KeyAttackSpeed, KeyExperienceRate,
}
