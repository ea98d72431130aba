package service

import (
	"errors"

	pkerrors "packlist/backend/common/errors"
	"packlist/backend/common/i18n"
	"packlist/backend/model"

	"gorm.io/gorm"
)

// CloneChecklist deep-copies a checklist subtree as one all-or-nothing
// transaction. The source is re-read inside the transaction so concurrent
// edits and concurrent clones each work from a consistent snapshot. File rows
// are copied by reference: clone and source alias the same blob links, blob
// bytes are never duplicated.
//
// newTitle falls back to "Copy of {source title}". ownerID may be nil, which
// produces an ownerless checklist (anonymous clone via a share token).
func CloneChecklist(sourceID int64, newTitle string, ownerID *int64, lang string) (*model.Checklist, error) {
	var cloneID int64

	err := model.DB.Transaction(func(tx *gorm.DB) error {
		var source model.Checklist
		err := tx.
			Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
			Preload("Categories.Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
			Preload("Categories.Items.Files", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
			Preload("Categories.Files", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
			First(&source, sourceID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return i18n.Wrap(err, pkerrors.ErrChecklistNotFound, lang)
			}
			return err
		}

		title := newTitle
		if title == "" {
			title = "Copy of " + source.Title
		}
		clone := model.Checklist{
			Title:       title,
			Description: source.Description,
			OwnerId:     ownerID,
		}
		if err := tx.Create(&clone).Error; err != nil {
			return err
		}

		for _, category := range source.Categories {
			newCategory := model.Category{
				ChecklistId: clone.Id,
				Name:        category.Name,
			}
			if err := tx.Create(&newCategory).Error; err != nil {
				return err
			}
			for _, item := range category.Items {
				newItem := model.Item{
					CategoryId:  newCategory.Id,
					Name:        item.Name,
					IsCompleted: item.IsCompleted,
				}
				if err := tx.Create(&newItem).Error; err != nil {
					return err
				}
				for _, file := range item.Files {
					newFile := model.ItemFile{
						ItemId:   newItem.Id,
						Filename: file.Filename,
						Link:     file.Link,
					}
					if err := tx.Create(&newFile).Error; err != nil {
						return err
					}
				}
			}
			for _, file := range category.Files {
				newFile := model.CategoryFile{
					CategoryId: newCategory.Id,
					Filename:   file.Filename,
					Link:       file.Link,
				}
				if err := tx.Create(&newFile).Error; err != nil {
					return err
				}
			}
		}

		cloneID = clone.Id
		return nil
	})
	if err != nil {
		if i18n.IsErrorCode(err, pkerrors.ErrChecklistNotFound) {
			return nil, err
		}
		return nil, i18n.Wrap(err, pkerrors.ErrCloneFailed, lang)
	}

	return model.GetChecklistDeep(cloneID, lang)
}
