package statemachine

import (
	"errors"

	"menuswap-api/models"
)

// Transition defines a valid moderation state change and who can perform it
type Transition struct {
	From  models.MenuStatus
	To    models.MenuStatus
	Actor string // "admin", "owner", "system"
}

// validTransitions is the authoritative moderation lifecycle definition
var validTransitions = []Transition{
	// Admin approves or rejects a submitted menu
	{From: models.StatusPending, To: models.StatusApproved, Actor: "admin"},
	{From: models.StatusPending, To: models.StatusRejected, Actor: "admin"},
	// Owner resubmits a rejected menu for another review
	{From: models.StatusRejected, To: models.StatusPending, Actor: "owner"},
	// Admin can pull an approved menu back out of rotation
	{From: models.StatusApproved, To: models.StatusRejected, Actor: "admin"},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.MenuStatus
	To    models.MenuStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.MenuStatus) []models.MenuStatus {
	var nexts []models.MenuStatus
	seen := map[models.MenuStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move a menu from one state to another
func CanTransition(from, to models.MenuStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " → " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.MenuStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full moderation lifecycle for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
