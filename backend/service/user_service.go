package service

import (
	"packlist/backend/model"
)

// DeleteUserAccount removes the account together with every checklist it
// owns, running each checklist through the same delete-and-sweep path a
// direct delete takes so no upload blobs are stranded. Ownerless checklists
// (anonymous clones) are untouched, and blobs they still alias survive.
func DeleteUserAccount(id int64, lang string) error {
	user, err := model.GetUserById(id, lang)
	if err != nil {
		return err
	}

	checklists, err := model.GetChecklistsByOwner(user.Id)
	if err != nil {
		return err
	}
	for _, checklist := range checklists {
		if err := DeleteChecklistTree(checklist); err != nil {
			return err
		}
	}
	return model.DeleteUserById(user.Id, lang)
}
