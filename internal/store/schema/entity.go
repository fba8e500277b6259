package schema

// Entity is implemented by every model that can be the subject of an audit log entry
type Entity interface {
	// EntityName is the kind name written in log entries, e.g. "Dungeon"
	EntityName() string
	// String is the human readable representation written in log entries
	String() string
}

// Searchable is implemented by models whose canonical external reference differs from their primary key
type Searchable interface {
	SearchID() any
}

// Named is implemented by models that carry a display name
type Named interface {
	DisplayName() string
}

// Models returns every model managed by the store in migration order
func Models() []any {
	return []any{
		&World{},
		&Dungeon{},
		&Battle{},
		&Enemy{},
		&EnemyBattle{},
		&Attribute{},
		&AttributeAssociation{},
		&Drop{},
		&DropAssociation{},
		&Prize{},
		&Condition{},
		&ConditionBattle{},
		&SpecificCondition{},
		&Material{},
		&Ability{},
		&AbilityCost{},
		&Relic{},
		&Character{},
		&CharacterEquip{},
		&CharacterAbility{},
		&Quest{},
		&Log{},
	}
}
