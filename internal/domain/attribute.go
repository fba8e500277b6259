package domain

import "fmt"

// statusAttributeFloor separates element attribute ids from status attribute ids
const statusAttributeFloor = 200

var attributeNames = map[int]string{
	// Elements
	100: "Fire",
	101: "Ice",
	102: "Lightning",
	103: "Earth",
	104: "Wind",
	105: "Water",
	106: "Holy",
	107: "Dark",
	108: "Poison (Bio)",

	// Status
	200: "Poison (Status)",
	201: "Silence",
	202: "Paralysis",
	203: "Confuse",
	204: "Haste",
	205: "Slow",
	206: "Stop",
	207: "Protect",
	208: "Shell",
	209: "Reflect",
	210: "Blind",
	211: "Sleep",
	212: "Petrify",
	213: "Doom",
	214: "Death",
	215: "Berserk",
	216: "Regen",
	217: "Reraise",
	218: "Float",
	219: "Weak",
	220: "Zombie",
	221: "Mini",
	222: "Toad",
	223: "Curse",
	224: "Slownumb",
	225: "Blink",
	226: "Water Imp",
	227: "Vanish",
	228: "Porky",
	229: "Sap",
}

var elementFactors = map[int]string{
	21: "Absorb",
	11: "Null",
	6:  "Resist",
	1:  "Weak",
}

var statusFactors = map[int]string{
	1: "Immune",
	0: "Vulnerable",
}

// AttributeName returns the display name of an attribute id
func AttributeName(attributeID int) string {
	if name, ok := attributeNames[attributeID]; ok {
		return name
	}
	return fmt.Sprintf("%d", attributeID)
}

// FactorName returns the display name of a resistance factor.
// Element and status attributes use different factor tables.
func FactorName(attributeID, factor int) string {
	table := elementFactors
	if attributeID >= statusAttributeFloor {
		table = statusFactors
	}
	if name, ok := table[factor]; ok {
		return name
	}
	return fmt.Sprintf("%d", factor)
}
