package model

import (
	"time"

	pkerrors "packlist/backend/common/errors"
	"packlist/backend/common/i18n"

	"gorm.io/gorm"
)

// Checklist is the aggregate root. OwnerId is an optional reference: nil means
// the checklist was produced by an anonymous clone and the owner path never
// admits anyone to it. Once set the owner is never reassigned.
type Checklist struct {
	Id          int64      `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"size:200;not null"`
	Description string     `json:"description" gorm:"type:text"`
	OwnerId     *int64     `json:"owner_id" gorm:"index"`
	CreatedAt   time.Time  `json:"created_at"`
	Categories  []Category `json:"categories" gorm:"foreignKey:ChecklistId;constraint:OnDelete:CASCADE"`
}

type Category struct {
	Id          int64          `json:"id" gorm:"primaryKey"`
	ChecklistId int64          `json:"-" gorm:"index;not null"`
	Name        string         `json:"name" gorm:"size:200;not null"`
	Items       []Item         `json:"items" gorm:"foreignKey:CategoryId;constraint:OnDelete:CASCADE"`
	Files       []CategoryFile `json:"files" gorm:"foreignKey:CategoryId;constraint:OnDelete:CASCADE"`
}

type Item struct {
	Id          int64      `json:"id" gorm:"primaryKey"`
	CategoryId  int64      `json:"-" gorm:"index;not null"`
	Name        string     `json:"name" gorm:"size:200;not null"`
	IsCompleted bool       `json:"is_completed" gorm:"default:false"`
	Files       []ItemFile `json:"files" gorm:"foreignKey:ItemId;constraint:OnDelete:CASCADE"`
}

func orderById(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// preloadTree loads the full nested representation in stable id order, the
// same shape every checklist read and the clone result reply with.
func preloadTree(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Categories", orderById).
		Preload("Categories.Items", orderById).
		Preload("Categories.Items.Files", orderById).
		Preload("Categories.Files", orderById)
}

// GetChecklistsByOwner lists the owner's checklists, deep. An unknown owner
// simply yields an empty slice.
func GetChecklistsByOwner(ownerId int64) ([]*Checklist, error) {
	var checklists []*Checklist
	err := preloadTree(DB).Where("owner_id = ?", ownerId).Order("id").Find(&checklists).Error
	return checklists, err
}

// GetChecklistDeep fetches a checklist with its whole subtree regardless of
// ownership. Callers must have resolved access first (share token path).
func GetChecklistDeep(id int64, lang string) (*Checklist, error) {
	var checklist Checklist
	if err := preloadTree(DB).First(&checklist, id).Error; err != nil {
		return nil, i18n.Wrap(err, pkerrors.ErrChecklistNotFound, lang)
	}
	return &checklist, nil
}

// GetChecklistByIdAndOwner fetches a checklist deep, scoped to the owner.
// Unowned and nonexistent ids are indistinguishable: both are not-found.
func GetChecklistByIdAndOwner(id int64, ownerId int64, lang string) (*Checklist, error) {
	var checklist Checklist
	err := preloadTree(DB).Where("id = ? AND owner_id = ?", id, ownerId).First(&checklist).Error
	if err != nil {
		return nil, i18n.Wrap(err, pkerrors.ErrChecklistNotFound, lang)
	}
	return &checklist, nil
}

func (checklist *Checklist) Insert() error {
	return DB.Create(checklist).Error
}

func (checklist *Checklist) Update() error {
	return DB.Model(checklist).Select("title", "description").Updates(checklist).Error
}

// DeleteChecklistById removes the checklist and every descendant row: share
// links, item files, items, category files, categories. The whole cascade runs
// in one transaction so a half-deleted tree is never visible. Blob files on
// disk are left alone here; rows in other trees may alias the same links.
func DeleteChecklistById(id int64) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		var categoryIds []int64
		if err := tx.Model(&Category{}).Where("checklist_id = ?", id).Pluck("id", &categoryIds).Error; err != nil {
			return err
		}
		if len(categoryIds) > 0 {
			var itemIds []int64
			if err := tx.Model(&Item{}).Where("category_id IN ?", categoryIds).Pluck("id", &itemIds).Error; err != nil {
				return err
			}
			if len(itemIds) > 0 {
				if err := tx.Where("item_id IN ?", itemIds).Delete(&ItemFile{}).Error; err != nil {
					return err
				}
				if err := tx.Where("category_id IN ?", categoryIds).Delete(&Item{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("category_id IN ?", categoryIds).Delete(&CategoryFile{}).Error; err != nil {
				return err
			}
			if err := tx.Where("checklist_id = ?", id).Delete(&Category{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("checklist_id = ?", id).Delete(&ShareLink{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Checklist{}, id).Error
	})
}

// GetCategoryInChecklist resolves a category only when it belongs to the given
// checklist, so nested routes cannot reach across trees.
func GetCategoryInChecklist(checklistId int64, categoryId int64, lang string) (*Category, error) {
	var category Category
	err := DB.Preload("Items", orderById).Preload("Items.Files", orderById).Preload("Files", orderById).
		Where("id = ? AND checklist_id = ?", categoryId, checklistId).First(&category).Error
	if err != nil {
		return nil, i18n.Wrap(err, pkerrors.ErrCategoryNotFound, lang)
	}
	return &category, nil
}

func (category *Category) Insert() error {
	return DB.Create(category).Error
}

func (category *Category) Update() error {
	return DB.Model(category).Select("name").Updates(category).Error
}

func DeleteCategoryById(id int64) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		var itemIds []int64
		if err := tx.Model(&Item{}).Where("category_id = ?", id).Pluck("id", &itemIds).Error; err != nil {
			return err
		}
		if len(itemIds) > 0 {
			if err := tx.Where("item_id IN ?", itemIds).Delete(&ItemFile{}).Error; err != nil {
				return err
			}
			if err := tx.Where("category_id = ?", id).Delete(&Item{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("category_id = ?", id).Delete(&CategoryFile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Category{}, id).Error
	})
}

// GetItemInCategory resolves an item only when the full containment chain
// checklist -> category -> item holds.
func GetItemInCategory(checklistId int64, categoryId int64, itemId int64, lang string) (*Item, error) {
	if _, err := GetCategoryShallow(checklistId, categoryId, lang); err != nil {
		return nil, err
	}
	var item Item
	err := DB.Preload("Files", orderById).Where("id = ? AND category_id = ?", itemId, categoryId).First(&item).Error
	if err != nil {
		return nil, i18n.Wrap(err, pkerrors.ErrItemNotFound, lang)
	}
	return &item, nil
}

// GetCategoryShallow checks containment without loading children.
func GetCategoryShallow(checklistId int64, categoryId int64, lang string) (*Category, error) {
	var category Category
	err := DB.Where("id = ? AND checklist_id = ?", categoryId, checklistId).First(&category).Error
	if err != nil {
		return nil, i18n.Wrap(err, pkerrors.ErrCategoryNotFound, lang)
	}
	return &category, nil
}

func (item *Item) Insert() error {
	return DB.Create(item).Error
}

func (item *Item) Update() error {
	return DB.Model(item).Select("name", "is_completed").Updates(item).Error
}

func DeleteItemById(id int64) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&ItemFile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Item{}, id).Error
	})
}
