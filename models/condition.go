package models

// Condition is a weather condition reported by MGM. Its value is the
// condition's short code packed into 24 bits, first byte most significant.
type Condition uint32

const (
	ConditionInvalid             Condition = 0
	ConditionClear               Condition = 0x410000 // A
	ConditionSomeClouds          Condition = 0x414200 // AB
	ConditionPartlyCloudy        Condition = 0x504200 // PB
	ConditionMostlyCloudy        Condition = 0x434200 // CB
	ConditionLightRainy          Condition = 0x485900 // HY
	ConditionRainy               Condition = 0x590000 // Y
	ConditionHeavyRainy          Condition = 0x4b5900 // KY
	ConditionSleety              Condition = 0x4b4b59 // KKY
	ConditionLightSnowy          Condition = 0x484b59 // HKY
	ConditionSnowy               Condition = 0x4b0000 // K
	ConditionHeavySnowy          Condition = 0x4b594b // KYK, also YKY
	ConditionLightDownpours      Condition = 0x485359 // HSY
	ConditionDownpours           Condition = 0x535900 // SY
	ConditionHeavyDownpours      Condition = 0x4b5359 // KSY
	ConditionIsolatedDownpours   Condition = 0x4d5359 // MSY
	ConditionHail                Condition = 0x445900 // DY
	ConditionThunderyShowers     Condition = 0x475359 // GSY
	ConditionHeavyThunderyShower Condition = 0x4b4759 // KGY
	ConditionFoggy               Condition = 0x534943 // SIS
	ConditionHazy                Condition = 0x505553 // PUS
	ConditionSmoggy              Condition = 0x444e4d // DNM
	ConditionDustStorm           Condition = 0x4b4600 // KF
	ConditionWindy               Condition = 0x520000 // R
	ConditionStrongSoutherlyWind Condition = 0x474b52 // GKR
	ConditionStrongNortherlyWind Condition = 0x4b4b52 // KKR
	ConditionWarm                Condition = 0x53434b // SCK
	ConditionCold                Condition = 0x53474b // SGK
)

// heavySnowyAlias is the packed value of "YKY".
const heavySnowyAlias = 0x594b59

type conditionInfo struct {
	code        string
	description string
}

var conditions = map[Condition]conditionInfo{
	ConditionClear:               {"A", "Clear"},
	ConditionSomeClouds:          {"AB", "Some clouds"},
	ConditionPartlyCloudy:        {"PB", "Partly cloudy"},
	ConditionMostlyCloudy:        {"CB", "Mostly cloudy"},
	ConditionLightRainy:          {"HY", "Light rain"},
	ConditionRainy:               {"Y", "Rain"},
	ConditionHeavyRainy:          {"KY", "Heavy rain"},
	ConditionSleety:              {"KKY", "Sleet"},
	ConditionLightSnowy:          {"HKY", "Light snow"},
	ConditionSnowy:               {"K", "Snow"},
	ConditionHeavySnowy:          {"KYK", "Heavy snow"},
	ConditionLightDownpours:      {"HSY", "Light downpours"},
	ConditionDownpours:           {"SY", "Downpours"},
	ConditionHeavyDownpours:      {"KSY", "Heavy downpours"},
	ConditionIsolatedDownpours:   {"MSY", "Isolated downpours"},
	ConditionHail:                {"DY", "Hail"},
	ConditionThunderyShowers:     {"GSY", "Thundery showers"},
	ConditionHeavyThunderyShower: {"KGY", "Heavy thundery showers"},
	ConditionFoggy:               {"SIS", "Fog"},
	ConditionHazy:                {"PUS", "Haze"},
	ConditionSmoggy:              {"DNM", "Smog"},
	ConditionDustStorm:           {"KF", "Dust storm"},
	ConditionWindy:               {"R", "Windy"},
	ConditionStrongSoutherlyWind: {"GKR", "Strong southerly wind"},
	ConditionStrongNortherlyWind: {"KKR", "Strong northerly wind"},
	ConditionWarm:                {"SCK", "Warm"},
	ConditionCold:                {"SGK", "Cold"},
}

// DecodeCondition decodes a 1 to 3 character MGM condition code.
// Unknown codes and codes of any other length decode to ConditionInvalid.
func DecodeCondition(code string) Condition {
	if len(code) < 1 || len(code) > 3 {
		return ConditionInvalid
	}

	var packed uint32
	for i := 0; i < len(code); i++ {
		packed |= uint32(code[i]) << (16 - 8*i)
	}

	if packed == heavySnowyAlias {
		return ConditionHeavySnowy
	}

	c := Condition(packed)
	if _, ok := conditions[c]; !ok {
		return ConditionInvalid
	}
	return c
}

// Valid reports whether c is a known condition.
func (c Condition) Valid() bool {
	_, ok := conditions[c]
	return ok
}

// Code returns the canonical MGM code, or "" for ConditionInvalid.
func (c Condition) Code() string {
	return conditions[c].code
}

func (c Condition) String() string {
	if info, ok := conditions[c]; ok {
		return info.description
	}
	return "Invalid"
}
