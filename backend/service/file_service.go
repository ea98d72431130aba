package service

import (
	"mime/multipart"

	"packlist/backend/common"
	pkerrors "packlist/backend/common/errors"
	"packlist/backend/common/i18n"
	"packlist/backend/model"
)

// AttachCategoryFile stores the blob and records the reference row. If the row
// insert fails the freshly saved blob is removed again.
func AttachCategoryFile(categoryID int64, file *multipart.FileHeader, lang string) (*model.CategoryFile, error) {
	link, err := common.UploadFile(file)
	if err != nil {
		return nil, i18n.Wrap(err, pkerrors.ErrUploadFailed, lang)
	}

	record := model.CategoryFile{
		CategoryId: categoryID,
		Filename:   file.Filename,
		Link:       link,
	}
	if err := record.Insert(); err != nil {
		_ = common.DeleteFile(link)
		return nil, i18n.Wrap(err, pkerrors.ErrUploadFailed, lang)
	}
	return &record, nil
}

func AttachItemFile(itemID int64, file *multipart.FileHeader, lang string) (*model.ItemFile, error) {
	link, err := common.UploadFile(file)
	if err != nil {
		return nil, i18n.Wrap(err, pkerrors.ErrUploadFailed, lang)
	}

	record := model.ItemFile{
		ItemId:   itemID,
		Filename: file.Filename,
		Link:     link,
	}
	if err := record.Insert(); err != nil {
		_ = common.DeleteFile(link)
		return nil, i18n.Wrap(err, pkerrors.ErrUploadFailed, lang)
	}
	return &record, nil
}

// DetachCategoryFile deletes the reference row and removes the blob from disk
// only when no other row (in either file table) still aliases the same link.
// Clones share links with their source, so the last reference wins.
func DetachCategoryFile(file *model.CategoryFile) error {
	if err := file.Delete(); err != nil {
		return err
	}
	return deleteBlobIfUnreferenced(file.Link)
}

func DetachItemFile(file *model.ItemFile) error {
	if err := file.Delete(); err != nil {
		return err
	}
	return deleteBlobIfUnreferenced(file.Link)
}

func deleteBlobIfUnreferenced(link string) error {
	remaining, err := model.CountLinkReferences(link)
	if err != nil {
		return err
	}
	if remaining > 0 {
		return nil
	}
	if err := common.DeleteFile(link); err != nil {
		common.SysError("failed to delete blob " + link + ": " + err.Error())
	}
	return nil
}
