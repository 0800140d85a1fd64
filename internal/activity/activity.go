// Hazelmere Charts - Game Progression Analytics and Rendering Engine
// Copyright 2026 Connor Floyd (ctfloyd)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ctfloyd/hazelmere-charts

package activity

import "strings"

// ActivityType identifies one tracked skill, activity, or boss encounter.
// The numeric value is the wire-protocol ordinal.
type ActivityType uint8

// Category partitions the taxonomy for threshold and breakdown decisions.
type Category uint8

const (
	CategorySkill Category = iota
	CategoryActivity
	CategoryBoss
)

// Skills (ordinals 0-25). Overall is the synthetic total-experience aggregate
// maintained by the server; Unknown is the sink for out-of-table ordinals.
const (
	Overall ActivityType = iota
	Attack
	Defence
	Strength
	Hitpoints
	Ranged
	Prayer
	Magic
	Cooking
	Woodcutting
	Fletching
	Fishing
	Firemaking
	Crafting
	Smithing
	Mining
	Herblore
	Agility
	Thieving
	Slayer
	Farming
	Runecrafting
	Hunter
	Construction
	Sailing
	Unknown
)

// Score-based activities (ordinals 26-45).
const (
	LeaguePoints ActivityType = iota + 26
	DeadmanPoints
	BountyHunterHunter
	BountyHunterRogue
	BountyHunterLegacyHunter
	BountyHunterLegacyRogue
	ClueScrollsAll
	ClueScrollsBeginner
	ClueScrollsEasy
	ClueScrollsMedium
	ClueScrollsHard
	ClueScrollsElite
	ClueScrollsMaster
	LastManStanding
	PvpArena
	SoulWarsZeal
	RiftsClosed
	ColosseumGlory
	CollectionsLogged
	DeadmanTournament
)

// Boss encounters (ordinals 46-113).
const (
	AbyssalSire ActivityType = iota + 46
	AlchemicalHydra
	Amoxliatl
	Araxxor
	Artio
	BarrowsChests
	Bryophyta
	Callisto
	Calvarion
	Cerberus
	ChambersOfXeric
	ChambersOfXericChallengeMode
	ChaosElemental
	ChaosFanatic
	CommanderZilyana
	CorporealBeast
	CrazyArchaeologist
	DagannothPrime
	DagannothRex
	DagannothSupreme
	DerangedArchaeologist
	DoomOfMokhaiotl
	DukeSucellus
	GeneralGraardor
	GiantMole
	GrotesqueGuardians
	Hespori
	KalphiteQueen
	KingBlackDragon
	Kraken
	KreeArra
	KrilTsutsaroth
	LunarChests
	Mimic
	Nex
	Nightmare
	PhosanisNightmare
	Obor
	PhantomMuspah
	Sarachnis
	Scorpia
	Scurrius
	Skotizo
	SolHeredit
	Spindel
	Tempoross
	TheGauntlet
	TheCorruptedGauntlet
	TheHueycoatl
	TheLeviathan
	TheRoyalTitans
	TheWhisperer
	TheatreOfBlood
	TheatreOfBloodHardMode
	ThermonuclearSmokeDevil
	TombsOfAmascut
	TombsOfAmascutExpertMode
	TormentedDemons
	TzKalZuk
	TzTokJad
	Vardorvis
	Venenatis
	Vetion
	Vorkath
	Wintertodt
	Yama
	Zalcano
	Zulrah
	// lastBoss marks the end of the ordinal table. New encounters append here.
	lastBoss = Zulrah
)

// TypeCount is the size of the ordinal table.
const TypeCount = int(lastBoss) + 1

// identifiers holds the snake_case identifier for each ordinal. Symbolic
// names (Name) are derived by title-casing these; the JSON transport carries
// the derived names verbatim.
var identifiers = [TypeCount]string{
	Overall:      "overall",
	Attack:       "attack",
	Defence:      "defence",
	Strength:     "strength",
	Hitpoints:    "hitpoints",
	Ranged:       "ranged",
	Prayer:       "prayer",
	Magic:        "magic",
	Cooking:      "cooking",
	Woodcutting:  "woodcutting",
	Fletching:    "fletching",
	Fishing:      "fishing",
	Firemaking:   "firemaking",
	Crafting:     "crafting",
	Smithing:     "smithing",
	Mining:       "mining",
	Herblore:     "herblore",
	Agility:      "agility",
	Thieving:     "thieving",
	Slayer:       "slayer",
	Farming:      "farming",
	Runecrafting: "runecrafting",
	Hunter:       "hunter",
	Construction: "construction",
	Sailing:      "sailing",
	Unknown:      "unknown",

	LeaguePoints:             "league_points",
	DeadmanPoints:            "deadman_points",
	BountyHunterHunter:       "bounty_hunter_hunter",
	BountyHunterRogue:        "bounty_hunter_rogue",
	BountyHunterLegacyHunter: "bounty_hunter_legacy_hunter",
	BountyHunterLegacyRogue:  "bounty_hunter_legacy_rogue",
	ClueScrollsAll:           "clue_scrolls_all",
	ClueScrollsBeginner:      "clue_scrolls_beginner",
	ClueScrollsEasy:          "clue_scrolls_easy",
	ClueScrollsMedium:        "clue_scrolls_medium",
	ClueScrollsHard:          "clue_scrolls_hard",
	ClueScrollsElite:         "clue_scrolls_elite",
	ClueScrollsMaster:        "clue_scrolls_master",
	LastManStanding:          "last_man_standing",
	PvpArena:                 "pvp_arena",
	SoulWarsZeal:             "soul_wars_zeal",
	RiftsClosed:              "rifts_closed",
	ColosseumGlory:           "colosseum_glory",
	CollectionsLogged:        "collections_logged",
	DeadmanTournament:        "deadman_tournament",

	AbyssalSire:                  "abyssal_sire",
	AlchemicalHydra:              "alchemical_hydra",
	Amoxliatl:                    "amoxliatl",
	Araxxor:                      "araxxor",
	Artio:                        "artio",
	BarrowsChests:                "barrows_chests",
	Bryophyta:                    "bryophyta",
	Callisto:                     "callisto",
	Calvarion:                    "calvarion",
	Cerberus:                     "cerberus",
	ChambersOfXeric:              "chambers_of_xeric",
	ChambersOfXericChallengeMode: "chambers_of_xeric_challenge_mode",
	ChaosElemental:               "chaos_elemental",
	ChaosFanatic:                 "chaos_fanatic",
	CommanderZilyana:             "commander_zilyana",
	CorporealBeast:               "corporeal_beast",
	CrazyArchaeologist:           "crazy_archaeologist",
	DagannothPrime:               "dagannoth_prime",
	DagannothRex:                 "dagannoth_rex",
	DagannothSupreme:             "dagannoth_supreme",
	DerangedArchaeologist:        "deranged_archaeologist",
	DoomOfMokhaiotl:              "doom_of_mokhaiotl",
	DukeSucellus:                 "duke_sucellus",
	GeneralGraardor:              "general_graardor",
	GiantMole:                    "giant_mole",
	GrotesqueGuardians:           "grotesque_guardians",
	Hespori:                      "hespori",
	KalphiteQueen:                "kalphite_queen",
	KingBlackDragon:              "king_black_dragon",
	Kraken:                       "kraken",
	KreeArra:                     "kree_arra",
	KrilTsutsaroth:               "kril_tsutsaroth",
	LunarChests:                  "lunar_chests",
	Mimic:                        "mimic",
	Nex:                          "nex",
	Nightmare:                    "nightmare",
	PhosanisNightmare:            "phosanis_nightmare",
	Obor:                         "obor",
	PhantomMuspah:                "phantom_muspah",
	Sarachnis:                    "sarachnis",
	Scorpia:                      "scorpia",
	Scurrius:                     "scurrius",
	Skotizo:                      "skotizo",
	SolHeredit:                   "sol_heredit",
	Spindel:                      "spindel",
	Tempoross:                    "tempoross",
	TheGauntlet:                  "the_gauntlet",
	TheCorruptedGauntlet:         "the_corrupted_gauntlet",
	TheHueycoatl:                 "the_hueycoatl",
	TheLeviathan:                 "the_leviathan",
	TheRoyalTitans:               "the_royal_titans",
	TheWhisperer:                 "the_whisperer",
	TheatreOfBlood:               "theatre_of_blood",
	TheatreOfBloodHardMode:       "theatre_of_blood_hard_mode",
	ThermonuclearSmokeDevil:      "thermonuclear_smoke_devil",
	TombsOfAmascut:               "tombs_of_amascut",
	TombsOfAmascutExpertMode:     "tombs_of_amascut_expert_mode",
	TormentedDemons:              "tormented_demons",
	TzKalZuk:                     "tzkal_zuk",
	TzTokJad:                     "tztok_jad",
	Vardorvis:                    "vardorvis",
	Venenatis:                    "venenatis",
	Vetion:                       "vetion",
	Vorkath:                      "vorkath",
	Wintertodt:                   "wintertodt",
	Yama:                         "yama",
	Zalcano:                      "zalcano",
	Zulrah:                       "zulrah",
}

var (
	names  [TypeCount]string
	byName map[string]ActivityType
)

func init() {
	byName = make(map[string]ActivityType, TypeCount)
	for i, id := range identifiers {
		names[i] = titleCase(id)
		byName[names[i]] = ActivityType(i)
	}
}

// titleCase converts a snake_case identifier to its symbolic name, e.g.
// "theatre_of_blood" -> "Theatre Of Blood".
func titleCase(id string) string {
	parts := strings.Split(id, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// FromOrdinal maps a wire ordinal to its activity type. The mapping is total:
// any value outside the table yields Unknown, never an error.
func FromOrdinal(ordinal int) ActivityType {
	if ordinal < 0 || ordinal >= TypeCount {
		return Unknown
	}
	return ActivityType(ordinal)
}

// FromName resolves a symbolic name back to its activity type. The lookup is
// exact; unrecognized names yield Unknown with ok=false.
func FromName(name string) (ActivityType, bool) {
	t, ok := byName[name]
	if !ok {
		return Unknown, false
	}
	return t, true
}

// Name returns the symbolic name carried by the JSON transport.
func (t ActivityType) Name() string {
	if int(t) >= TypeCount {
		return names[Unknown]
	}
	return names[t]
}

// String implements fmt.Stringer.
func (t ActivityType) String() string { return t.Name() }

// Ordinal returns the wire-protocol ordinal.
func (t ActivityType) Ordinal() int { return int(t) }

// Category reports which taxonomy partition the type belongs to.
// Out-of-table values categorize as skills, matching their decode to Unknown.
func (t ActivityType) Category() Category {
	switch {
	case t <= Unknown:
		return CategorySkill
	case t <= DeadmanTournament:
		return CategoryActivity
	case t <= lastBoss:
		return CategoryBoss
	default:
		return CategorySkill
	}
}

// String returns the partition's lower-case label.
func (c Category) String() string {
	switch c {
	case CategoryActivity:
		return "activity"
	case CategoryBoss:
		return "boss"
	default:
		return "skill"
	}
}

// IsSkill reports whether t is a skill, including Overall and Unknown.
func (t ActivityType) IsSkill() bool { return t.Category() == CategorySkill }

// IsActivity reports whether t is a score-based activity.
func (t ActivityType) IsActivity() bool { return t.Category() == CategoryActivity }

// IsBoss reports whether t is a boss encounter.
func (t ActivityType) IsBoss() bool { return t.Category() == CategoryBoss }

// IsRealSkill reports whether t is a trainable skill, excluding the synthetic
// Overall aggregate and the Unknown sink. Breakdown eligibility uses this.
func (t ActivityType) IsRealSkill() bool {
	return t.IsSkill() && t != Overall && t != Unknown
}

// Skills returns the skill partition in ordinal order.
func Skills() []ActivityType { return rangeTypes(Overall, Unknown) }

// Activities returns the score-based activity partition in ordinal order.
func Activities() []ActivityType { return rangeTypes(LeaguePoints, DeadmanTournament) }

// Bosses returns the boss partition in ordinal order.
func Bosses() []ActivityType { return rangeTypes(AbyssalSire, lastBoss) }

// CombatSkills returns the seven skills consumed by the combat-level formula.
func CombatSkills() []ActivityType {
	return []ActivityType{Attack, Strength, Defence, Hitpoints, Prayer, Ranged, Magic}
}

func rangeTypes(lo, hi ActivityType) []ActivityType {
	out := make([]ActivityType, 0, int(hi)-int(lo)+1)
	for t := lo; t <= hi; t++ {
		out = append(out, t)
	}
	return out
}
