package services

import "github.com/bhanujongit4/Rise.Foundation.Connect/internal/models"

// CanMutate is the only access-control rule in the system: the owner may
// mutate, everyone else may only read. An empty caller id (no authenticated
// session) is always denied.
func CanMutate(rec *models.Record, currentUserID string) bool {
	if rec == nil || currentUserID == "" {
		return false
	}
	return rec.UserID == currentUserID
}
