package service

import (
	"path/filepath"
	"testing"

	"packlist/backend/common"
	"packlist/backend/model"

	"github.com/stretchr/testify/assert"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	originalSQLitePath := common.SQLitePath
	common.SQLitePath = filepath.Join(t.TempDir(), "service_test.db")

	err := model.InitDB()
	assert.NoError(t, err)

	t.Cleanup(func() {
		common.SQLitePath = originalSQLitePath
	})
}

// createTestTree builds the "Trip" fixture: one category with two items, one
// file reference on the category and one on the first item.
func createTestTree(t *testing.T, ownerId *int64) *model.Checklist {
	t.Helper()

	checklist := &model.Checklist{Title: "Trip", Description: "summer trip", OwnerId: ownerId}
	assert.NoError(t, checklist.Insert())

	category := &model.Category{ChecklistId: checklist.Id, Name: "Packing"}
	assert.NoError(t, category.Insert())

	passport := &model.Item{CategoryId: category.Id, Name: "Passport", IsCompleted: false}
	assert.NoError(t, passport.Insert())
	sunscreen := &model.Item{CategoryId: category.Id, Name: "Sunscreen", IsCompleted: true}
	assert.NoError(t, sunscreen.Insert())

	categoryFile := &model.CategoryFile{CategoryId: category.Id, Filename: "packing.pdf", Link: "cat-blob.pdf"}
	assert.NoError(t, categoryFile.Insert())
	itemFile := &model.ItemFile{ItemId: passport.Id, Filename: "scan.png", Link: "item-blob.png"}
	assert.NoError(t, itemFile.Insert())

	deep, err := model.GetChecklistDeep(checklist.Id, "en")
	assert.NoError(t, err)
	return deep
}

func ownerRef(id int64) *int64 {
	return &id
}
