package service

import (
	"os"
	"path/filepath"
	"testing"

	"packlist/backend/common"
	"packlist/backend/model"

	"github.com/stretchr/testify/assert"
)

func TestDetachFile_SharedBlobSurvivesUntilLastReference(t *testing.T) {
	setupTestDB(t)
	originalUploadPath := common.UploadPath
	common.UploadPath = t.TempDir()
	t.Cleanup(func() { common.UploadPath = originalUploadPath })

	checklist := createTestTree(t, ownerRef(1))
	category := checklist.Categories[0]
	original := category.Files[0]

	blobPath := filepath.Join(common.UploadPath, original.Link)
	assert.NoError(t, os.WriteFile(blobPath, []byte("pdf bytes"), 0o644))

	// A second row aliasing the same link, as the clone engine produces.
	alias := &model.CategoryFile{CategoryId: category.Id, Filename: original.Filename, Link: original.Link}
	assert.NoError(t, alias.Insert())

	assert.NoError(t, DetachCategoryFile(&original))
	_, err := os.Stat(blobPath)
	assert.NoError(t, err, "blob must survive while another row references it")

	assert.NoError(t, DetachCategoryFile(alias))
	_, err = os.Stat(blobPath)
	assert.True(t, os.IsNotExist(err), "blob must be removed with its last reference")
}

func TestCountLinkReferences_AcrossBothTables(t *testing.T) {
	setupTestDB(t)
	checklist := createTestTree(t, ownerRef(1))
	category := checklist.Categories[0]
	item := category.Items[0]

	shared := "shared-blob.bin"
	assert.NoError(t, (&model.CategoryFile{CategoryId: category.Id, Link: shared}).Insert())
	assert.NoError(t, (&model.ItemFile{ItemId: item.Id, Link: shared}).Insert())

	count, err := model.CountLinkReferences(shared)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
