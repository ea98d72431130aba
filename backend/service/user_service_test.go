package service

import (
	"os"
	"path/filepath"
	"testing"

	"packlist/backend/common"
	"packlist/backend/model"

	"github.com/stretchr/testify/assert"
)

func TestDeleteUserAccount_SweepsOwnedBlobs(t *testing.T) {
	setupTestDB(t)
	originalUploadPath := common.UploadPath
	common.UploadPath = t.TempDir()
	t.Cleanup(func() { common.UploadPath = originalUploadPath })

	user := &model.User{Username: "carol", Password: "secret123", Status: common.UserStatusEnabled}
	assert.NoError(t, user.Insert())
	checklist := createTestTree(t, ownerRef(user.Id))

	catBlob := filepath.Join(common.UploadPath, "cat-blob.pdf")
	itemBlob := filepath.Join(common.UploadPath, "item-blob.png")
	assert.NoError(t, os.WriteFile(catBlob, []byte("pdf bytes"), 0o644))
	assert.NoError(t, os.WriteFile(itemBlob, []byte("png bytes"), 0o644))

	assert.NoError(t, DeleteUserAccount(user.Id, "en"))

	_, err := model.GetUserById(user.Id, "en")
	assert.Error(t, err)
	_, err = model.GetChecklistDeep(checklist.Id, "en")
	assert.Error(t, err)

	_, err = os.Stat(catBlob)
	assert.True(t, os.IsNotExist(err), "category blob must be swept with the account")
	_, err = os.Stat(itemBlob)
	assert.True(t, os.IsNotExist(err), "item blob must be swept with the account")
}

func TestDeleteUserAccount_KeepsOwnerlessTreesAndAliasedBlobs(t *testing.T) {
	setupTestDB(t)
	originalUploadPath := common.UploadPath
	common.UploadPath = t.TempDir()
	t.Cleanup(func() { common.UploadPath = originalUploadPath })

	user := &model.User{Username: "carol", Password: "secret123", Status: common.UserStatusEnabled}
	assert.NoError(t, user.Insert())
	owned := createTestTree(t, ownerRef(user.Id))

	// An anonymous clone aliases the owned tree's blob links.
	clone, err := CloneChecklist(owned.Id, "", nil, "en")
	assert.NoError(t, err)

	catBlob := filepath.Join(common.UploadPath, "cat-blob.pdf")
	assert.NoError(t, os.WriteFile(catBlob, []byte("pdf bytes"), 0o644))

	assert.NoError(t, DeleteUserAccount(user.Id, "en"))

	// The ownerless clone and the blob it still references survive.
	kept, err := model.GetChecklistDeep(clone.Id, "en")
	assert.NoError(t, err)
	assert.Nil(t, kept.OwnerId)
	_, err = os.Stat(catBlob)
	assert.NoError(t, err, "blob aliased by the ownerless clone must survive")
}

func TestDeleteUserAccount_UnknownUser(t *testing.T) {
	setupTestDB(t)
	assert.Error(t, DeleteUserAccount(4242, "en"))
}
