package model

import (
	pkerrors "packlist/backend/common/errors"
	"packlist/backend/common/i18n"
)

// CategoryFile and ItemFile are reference rows only: Link names a blob in the
// upload store and is copied verbatim by the clone engine, so several rows may
// alias one blob.
type CategoryFile struct {
	Id         int64  `json:"id" gorm:"primaryKey"`
	CategoryId int64  `json:"-" gorm:"index;not null"`
	Filename   string `json:"filename" gorm:"size:255"`
	Link       string `json:"link" gorm:"index;size:100;not null"`
	CreatedAt  int64  `json:"created_at" gorm:"autoCreateTime"`
}

type ItemFile struct {
	Id        int64  `json:"id" gorm:"primaryKey"`
	ItemId    int64  `json:"-" gorm:"index;not null"`
	Filename  string `json:"filename" gorm:"size:255"`
	Link      string `json:"link" gorm:"index;size:100;not null"`
	CreatedAt int64  `json:"created_at" gorm:"autoCreateTime"`
}

func GetCategoryFileById(categoryId int64, fileId int64, lang string) (*CategoryFile, error) {
	var file CategoryFile
	if err := DB.Where("id = ? AND category_id = ?", fileId, categoryId).First(&file).Error; err != nil {
		return nil, i18n.Wrap(err, pkerrors.ErrFileNotFound, lang)
	}
	return &file, nil
}

func GetItemFileById(itemId int64, fileId int64, lang string) (*ItemFile, error) {
	var file ItemFile
	if err := DB.Where("id = ? AND item_id = ?", fileId, itemId).First(&file).Error; err != nil {
		return nil, i18n.Wrap(err, pkerrors.ErrFileNotFound, lang)
	}
	return &file, nil
}

func (file *CategoryFile) Insert() error {
	return DB.Create(file).Error
}

func (file *ItemFile) Insert() error {
	return DB.Create(file).Error
}

func (file *CategoryFile) Delete() error {
	return DB.Delete(file).Error
}

func (file *ItemFile) Delete() error {
	return DB.Delete(file).Error
}

// CountLinkReferences counts every reference row aliasing a blob link across
// both file tables. A blob may be removed from disk only when this drops to
// zero.
func CountLinkReferences(link string) (int64, error) {
	var categoryCount, itemCount int64
	if err := DB.Model(&CategoryFile{}).Where("link = ?", link).Count(&categoryCount).Error; err != nil {
		return 0, err
	}
	if err := DB.Model(&ItemFile{}).Where("link = ?", link).Count(&itemCount).Error; err != nil {
		return 0, err
	}
	return categoryCount + itemCount, nil
}
