/*
rules.go - The tier x day-type rule table and accrual branches

PURPOSE:
  Centralizes all four rule combinations (special/standard tier x
  holiday/regular day) in one injected table, so every threshold, rate,
  cap and window boundary is auditable and tunable in a single place.

HOLIDAY BRANCH:
  hours = floor(session duration); below 2 hours the session is
  disqualified. Pay = hours x tier holiday rate, then capped at the tier's
  flat per-session ceiling (400 special / 420 standard). Hours themselves
  are never clamped on holidays.

REGULAR-DAY BRANCH:
  The OT window opens at a fixed minute-of-day boundary (17:00 special,
  16:30 standard) regardless of when the staff member actually arrived.
  hours = floor((checkout minute - window start) / 60), clamped into
  [0, 4] BEFORE the minimum-2 check, so an 8-hour overrun clamps to 4 and
  still qualifies. Pay is a flat 50/hour with no tier distinction. The
  emitted record's start is synthesized at the window boundary, not the
  actual clock-in.

FAILURE SEMANTICS:
  Accrue never errors. Every session yields exactly one record or none;
  "none" is a legitimate no-qualifying-OT outcome, not a failure.
*/
package overtime

import "github.com/shopspring/decimal"

// minQualifyingHours is the floor below which a session earns nothing,
// applied on both branches after all other arithmetic.
const minQualifyingHours = 2

// regularMaxHours caps regular-day OT; the clamp runs before the
// minimum-hours check.
const regularMaxHours = 4

// =============================================================================
// ROSTER - Which staff are special tier
// =============================================================================

// Roster resolves staff names to tiers. Membership is static
// configuration, not derived from attendance data.
type Roster struct {
	special map[string]bool
}

func NewRoster(specialStaff ...string) *Roster {
	special := make(map[string]bool, len(specialStaff))
	for _, name := range specialStaff {
		special[name] = true
	}
	return &Roster{special: special}
}

// DefaultRoster returns the department's special-tier staff.
func DefaultRoster() *Roster {
	return NewRoster(
		"นายวิทวัส แปงใจ",
		"นายปรพัฒน์ ขัตวงษ์",
	)
}

// TierOf returns TierSpecial for roster members, TierStandard otherwise.
func (r *Roster) TierOf(name string) Tier {
	if r.special[name] {
		return TierSpecial
	}
	return TierStandard
}

// SpecialStaff returns the roster members, for collaborators that split
// output by tier.
func (r *Roster) SpecialStaff() []string {
	names := make([]string, 0, len(r.special))
	for name := range r.special {
		names = append(names, name)
	}
	return names
}

// =============================================================================
// RULE TABLE
// =============================================================================

// TierRules carries every tier-dependent constant of the accrual engine.
type TierRules struct {
	HolidayRate        decimal.Decimal // per hour, holiday sessions
	HolidayCap         decimal.Decimal // flat per-session pay ceiling
	RegularWindowStart int             // minute of day the OT window opens
}

// RuleTable maps each tier onto its rules. Injected, never global.
type RuleTable map[Tier]TierRules

// RegularRate is the flat regular-day rate; no tier distinction.
var RegularRate = decimal.NewFromInt(50)

// DefaultRules returns the department's current rule set.
func DefaultRules() RuleTable {
	return RuleTable{
		TierSpecial: {
			HolidayRate:        decimal.NewFromInt(50),
			HolidayCap:         decimal.NewFromInt(400),
			RegularWindowStart: 17 * 60, // 17:00
		},
		TierStandard: {
			HolidayRate:        decimal.NewFromInt(60),
			HolidayCap:         decimal.NewFromInt(420),
			RegularWindowStart: 16*60 + 30, // 16:30
		},
	}
}

// =============================================================================
// ACCRUAL
// =============================================================================

// Accrue computes the OT record for one session under one rule set.
// Returns (record, true) for qualifying sessions, (zero, false) otherwise.
func (rules RuleTable) Accrue(session WorkSession, dayType DayType, tier Tier) (OvertimeRecord, bool) {
	tr := rules[tier]
	switch dayType {
	case DayHoliday:
		return tr.accrueHoliday(session)
	default:
		return tr.accrueRegular(session)
	}
}

func (tr TierRules) accrueHoliday(session WorkSession) (OvertimeRecord, bool) {
	hours := int(session.End.Sub(session.Start).Hours())
	if hours < minQualifyingHours {
		return OvertimeRecord{}, false
	}

	pay := tr.HolidayRate.Mul(decimal.NewFromInt(int64(hours)))
	if pay.GreaterThan(tr.HolidayCap) {
		pay = tr.HolidayCap
	}

	return OvertimeRecord{
		Date:    session.Date,
		DayType: DayHoliday,
		Start:   session.Start,
		End:     session.End,
		Hours:   hours,
		Pay:     pay,
	}, true
}

func (tr TierRules) accrueRegular(session WorkSession) (OvertimeRecord, bool) {
	overrun := minuteOfDay(session.End) - tr.RegularWindowStart
	hours := overrun / 60
	if overrun < 0 {
		hours = 0
	}
	if hours > regularMaxHours {
		hours = regularMaxHours
	}
	// Clamp before the qualification check: an 8-hour overrun becomes 4
	// and still passes.
	if hours < minQualifyingHours {
		return OvertimeRecord{}, false
	}

	return OvertimeRecord{
		Date:    session.Date,
		DayType: DayRegular,
		Start:   atMinuteOfDay(session.End, tr.RegularWindowStart),
		End:     session.End,
		Hours:   hours,
		Pay:     RegularRate.Mul(decimal.NewFromInt(int64(hours))),
	}, true
}
