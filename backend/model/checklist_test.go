package model

import (
	"path/filepath"
	"testing"

	"packlist/backend/common"

	"github.com/stretchr/testify/assert"
)

func setupModelTestDB(t *testing.T) {
	t.Helper()
	originalSQLitePath := common.SQLitePath
	common.SQLitePath = filepath.Join(t.TempDir(), "model_test.db")

	err := InitDB()
	assert.NoError(t, err)

	t.Cleanup(func() {
		common.SQLitePath = originalSQLitePath
	})
}

func buildTree(t *testing.T, ownerId *int64) *Checklist {
	t.Helper()
	checklist := &Checklist{Title: "Trip", Description: "desc", OwnerId: ownerId}
	assert.NoError(t, checklist.Insert())
	category := &Category{ChecklistId: checklist.Id, Name: "Packing"}
	assert.NoError(t, category.Insert())
	item := &Item{CategoryId: category.Id, Name: "Passport"}
	assert.NoError(t, item.Insert())
	assert.NoError(t, (&CategoryFile{CategoryId: category.Id, Filename: "a.pdf", Link: "a.pdf"}).Insert())
	assert.NoError(t, (&ItemFile{ItemId: item.Id, Filename: "b.png", Link: "b.png"}).Insert())
	assert.NoError(t, (&ShareLink{ChecklistId: checklist.Id, Token: common.GetUUID()}).Insert())
	return checklist
}

func TestDeleteChecklistById_CascadesToAllDescendants(t *testing.T) {
	setupModelTestDB(t)
	ownerId := int64(1)
	checklist := buildTree(t, &ownerId)
	survivor := buildTree(t, &ownerId)

	assert.NoError(t, DeleteChecklistById(checklist.Id))

	var checklists, categories, items, categoryFiles, itemFiles, shareLinks int64
	DB.Model(&Checklist{}).Count(&checklists)
	DB.Model(&Category{}).Count(&categories)
	DB.Model(&Item{}).Count(&items)
	DB.Model(&CategoryFile{}).Count(&categoryFiles)
	DB.Model(&ItemFile{}).Count(&itemFiles)
	DB.Model(&ShareLink{}).Count(&shareLinks)

	// Only the second tree's rows remain.
	assert.Equal(t, int64(1), checklists)
	assert.Equal(t, int64(1), categories)
	assert.Equal(t, int64(1), items)
	assert.Equal(t, int64(1), categoryFiles)
	assert.Equal(t, int64(1), itemFiles)
	assert.Equal(t, int64(1), shareLinks)

	_, err := GetChecklistDeep(survivor.Id, "en")
	assert.NoError(t, err)
}

func TestGetChecklistsByOwner_UnknownOwnerIsEmpty(t *testing.T) {
	setupModelTestDB(t)
	ownerId := int64(1)
	buildTree(t, &ownerId)

	checklists, err := GetChecklistsByOwner(42)
	assert.NoError(t, err)
	assert.Empty(t, checklists)
}

func TestGetCategoryInChecklist_RejectsCrossTreeAccess(t *testing.T) {
	setupModelTestDB(t)
	ownerId := int64(1)
	first := buildTree(t, &ownerId)
	second := buildTree(t, &ownerId)

	firstDeep, err := GetChecklistDeep(first.Id, "en")
	assert.NoError(t, err)

	// The category exists, but not under the second checklist.
	_, err = GetCategoryInChecklist(second.Id, firstDeep.Categories[0].Id, "en")
	assert.Error(t, err)
}

func TestGetItemInCategory_RequiresFullContainmentChain(t *testing.T) {
	setupModelTestDB(t)
	ownerId := int64(1)
	first := buildTree(t, &ownerId)
	second := buildTree(t, &ownerId)

	firstDeep, err := GetChecklistDeep(first.Id, "en")
	assert.NoError(t, err)
	secondDeep, err := GetChecklistDeep(second.Id, "en")
	assert.NoError(t, err)

	item := firstDeep.Categories[0].Items[0]

	_, err = GetItemInCategory(first.Id, firstDeep.Categories[0].Id, item.Id, "en")
	assert.NoError(t, err)

	// Wrong category, wrong checklist: both not-found.
	_, err = GetItemInCategory(first.Id, secondDeep.Categories[0].Id, item.Id, "en")
	assert.Error(t, err)
	_, err = GetItemInCategory(second.Id, firstDeep.Categories[0].Id, item.Id, "en")
	assert.Error(t, err)
}
