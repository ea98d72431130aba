package service

import (
	"packlist/backend/model"
)

func collectTreeLinks(checklist *model.Checklist) []string {
	seen := make(map[string]bool)
	var links []string
	add := func(link string) {
		if link != "" && !seen[link] {
			seen[link] = true
			links = append(links, link)
		}
	}
	for _, category := range checklist.Categories {
		for _, file := range category.Files {
			add(file.Link)
		}
		for _, item := range category.Items {
			for _, file := range item.Files {
				add(file.Link)
			}
		}
	}
	return links
}

// DeleteChecklistTree removes the checklist with all descendant rows and then
// sweeps blobs no remaining row references. Row deletion is transactional;
// blob cleanup runs after commit and is best-effort.
func DeleteChecklistTree(checklist *model.Checklist) error {
	links := collectTreeLinks(checklist)
	if err := model.DeleteChecklistById(checklist.Id); err != nil {
		return err
	}
	for _, link := range links {
		_ = deleteBlobIfUnreferenced(link)
	}
	return nil
}

// DeleteCategoryTree removes one category subtree, with the same blob sweep.
func DeleteCategoryTree(category *model.Category) error {
	seen := make(map[string]bool)
	var links []string
	for _, file := range category.Files {
		if !seen[file.Link] {
			seen[file.Link] = true
			links = append(links, file.Link)
		}
	}
	for _, item := range category.Items {
		for _, file := range item.Files {
			if !seen[file.Link] {
				seen[file.Link] = true
				links = append(links, file.Link)
			}
		}
	}
	if err := model.DeleteCategoryById(category.Id); err != nil {
		return err
	}
	for _, link := range links {
		_ = deleteBlobIfUnreferenced(link)
	}
	return nil
}

// DeleteItemTree removes one item with its file rows, with the same blob sweep.
func DeleteItemTree(item *model.Item) error {
	seen := make(map[string]bool)
	var links []string
	for _, file := range item.Files {
		if !seen[file.Link] {
			seen[file.Link] = true
			links = append(links, file.Link)
		}
	}
	if err := model.DeleteItemById(item.Id); err != nil {
		return err
	}
	for _, link := range links {
		_ = deleteBlobIfUnreferenced(link)
	}
	return nil
}
