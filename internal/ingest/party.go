package ingest

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rEtSaMfF/ffrk-bottle/internal/domain"
	"github.com/rEtSaMfF/ffrk-bottle/internal/logger"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store/schema"
)

// relicBackfillColumns are filled in on an existing relic only while still empty
var relicBackfillColumns = []string{"critical", "image_path", "detail_image_path"}

// ImportParty imports the player's relics, materials and characters
func (i *Importer) ImportParty(ctx context.Context, in Input) (bool, error) {
	var payload partyPayload
	if err := i.load(ctx, "ImportParty", in, &payload); err != nil {
		return false, err
	}
	switch {
	case payload.Equipments == nil:
		return false, missingKey("equipments")
	case payload.Materials == nil:
		return false, missingKey("materials")
	case payload.Buddies == nil:
		return false, missingKey("buddies")
	}

	return i.run(ctx, "ImportParty", func(tx *store.Tx) error {
		for _, record := range payload.Equipments {
			if err := reconcileRelic(ctx, tx, record); err != nil {
				return err
			}
		}
		for _, record := range payload.Materials {
			if err := reconcileMaterial(ctx, tx, record); err != nil {
				return err
			}
		}
		for _, record := range payload.Buddies {
			if err := i.reconcileCharacter(ctx, tx, record); err != nil {
				return err
			}
		}
		return nil
	})
}

// ImportDFF imports the characters of the root page. Their stats include the
// equipped gear, which is subtracted before reconciliation; the gear itself is not imported.
func (i *Importer) ImportDFF(ctx context.Context, in Input) (bool, error) {
	var payload dffPayload
	if err := i.load(ctx, "ImportDFF", in, &payload); err != nil {
		return false, err
	}
	if payload.Equipment == nil {
		return false, missingKey("equipment")
	}

	gear := make(map[Int]relicRecord, len(payload.Equipment))
	for _, equipment := range payload.Equipment {
		gear[equipment.ID] = equipment
	}

	return i.run(ctx, "ImportDFF", func(tx *store.Tx) error {
		for _, record := range payload.Buddy {
			base, err := withoutEquippedGear(record, gear)
			if err != nil {
				logger.ErrorCtx(ctx, err, zap.Int64("buddyID", int64(record.BuddyID)))
				continue
			}
			if err := i.reconcileCharacter(ctx, tx, base); err != nil {
				return err
			}
		}
		return nil
	})
}

// withoutEquippedGear subtracts the accessory, armor and weapon of a character; zero means nothing equipped
func withoutEquippedGear(record characterRecord, gear map[Int]relicRecord) (characterRecord, error) {
	for _, id := range []Int{record.AccessoryID, record.ArmorID, record.WeaponID} {
		if id == 0 {
			continue
		}
		equipment, ok := gear[id]
		if !ok {
			return record, fmt.Errorf("equipment %d worn by buddy %d not found in payload", id, record.BuddyID)
		}
		record = record.withoutGear(equipment)
	}
	return record, nil
}

// ImportEnhanceEvolve imports the relic snapshots before and after an upgrade
func (i *Importer) ImportEnhanceEvolve(ctx context.Context, in Input) (bool, error) {
	var payload enhanceEvolvePayload
	if err := i.load(ctx, "ImportEnhanceEvolve", in, &payload); err != nil {
		return false, err
	}
	if payload.Old == nil || payload.New == nil {
		return false, missingKey("old_src_user_equipment or new_src_user_equipment")
	}

	return i.run(ctx, "ImportEnhanceEvolve", func(tx *store.Tx) error {
		for _, record := range []relicRecord{*payload.Old, *payload.New} {
			if err := reconcileRelic(ctx, tx, record); err != nil {
				return err
			}
		}
		return nil
	})
}

// ImportGrow imports the character snapshot after a growth egg was used
func (i *Importer) ImportGrow(ctx context.Context, in Input) (bool, error) {
	var payload growPayload
	if err := i.load(ctx, "ImportGrow", in, &payload); err != nil {
		return false, err
	}
	if payload.Buddy == nil {
		return false, missingKey("buddy")
	}

	return i.run(ctx, "ImportGrow", func(tx *store.Tx) error {
		return i.reconcileCharacter(ctx, tx, *payload.Buddy)
	})
}

func reconcileRelic(ctx context.Context, tx *store.Tx, record relicRecord) error {
	incoming := record.row()
	relic, created, err := store.GetOrCreate[schema.Relic](ctx, tx,
		store.Key{"equipment_id": incoming.EquipmentID, "level": incoming.Level, "rarity": incoming.Rarity},
		func() *schema.Relic { return incoming },
	)
	if err != nil || created {
		return err
	}
	_, err = store.Backfill[schema.Relic](ctx, tx, relic, incoming, relicBackfillColumns)
	return err
}

func reconcileMaterial(ctx context.Context, tx *store.Tx, record materialRecord) error {
	_, _, err := store.GetOrCreate[schema.Material](ctx, tx,
		store.Key{"id": int64(record.ID)},
		record.row,
	)
	return err
}

// reconcileCharacter creates or updates one (buddy_id, level) snapshot and its capabilities.
// Stat increases explained by a known mastery bonus are not applied.
func (i *Importer) reconcileCharacter(ctx context.Context, tx *store.Tx, record characterRecord) error {
	incoming := record.row()
	character, created, err := store.GetOrCreate[schema.Character](ctx, tx,
		store.Key{"buddy_id": incoming.BuddyID, "level": incoming.Level},
		func() *schema.Character { return incoming },
	)
	if err != nil {
		return err
	}
	if !created {
		_, err := store.DiffUpdate[schema.Character](ctx, tx, character, incoming,
			schema.CharacterStatColumns, i.ignoreFor(character.BuddyID))
		if err != nil {
			return err
		}
	}

	for _, capability := range record.EquipmentCategory {
		if err := addEquipCapability(ctx, tx, character, capability); err != nil {
			return err
		}
	}
	for _, capability := range record.AbilityCategory {
		if err := addAbilityCapability(ctx, tx, character, capability); err != nil {
			return err
		}
	}
	return nil
}

func addEquipCapability(ctx context.Context, tx *store.Tx, character *schema.Character, capability equipCapability) error {
	if factor := string(capability.Factor); factor != "" && factor != domain.KnownEquipFactor {
		logger.ErrorCtx(ctx, fmt.Errorf("unexpected equip factor %q", factor),
			zap.String("character", store.Describe(character)),
			zap.Int64("categoryID", int64(capability.CategoryID)),
		)
	}

	equip := &schema.CharacterEquip{
		CategoryID:    int(capability.CategoryID),
		EquipmentType: int(capability.EquipmentType),
		BuddyID:       character.BuddyID,
	}
	_, _, err := store.GetOrCreate[schema.CharacterEquip](ctx, tx,
		store.Key{"category_id": equip.CategoryID, "equipment_type": equip.EquipmentType, "buddy_id": equip.BuddyID},
		func() *schema.CharacterEquip { return equip },
		store.AsAssociation(equip, character),
	)
	return err
}

func addAbilityCapability(ctx context.Context, tx *store.Tx, character *schema.Character, capability abilityCapability) error {
	incoming := &schema.CharacterAbility{
		CategoryID: int(capability.CategoryID),
		BuddyID:    character.BuddyID,
		Rarity:     int(capability.Rarity),
	}
	ability, created, err := store.GetOrCreate[schema.CharacterAbility](ctx, tx,
		store.Key{"category_id": incoming.CategoryID, "buddy_id": incoming.BuddyID},
		func() *schema.CharacterAbility { return incoming },
		store.AsAssociation(incoming, character),
	)
	if err != nil || created {
		return err
	}
	_, err = store.DiffUpdate[schema.CharacterAbility](ctx, tx, ability, incoming, []string{"rarity"}, nil)
	return err
}
