package model

import (
	"time"

	"github.com/actuli/actuli-api/internal/derive"
)

// MergeUser folds the non-nil fields of incoming into stored and returns
// stored. Identity and creation time are never taken from incoming. Derived
// contact fields are refreshed and the modification time is stamped last.
// The merge is in-memory only; the caller persists the result.
func MergeUser(stored, incoming *AppUser) *AppUser {
	stored.Username = coalesce(incoming.Username, stored.Username)
	stored.Name = coalesce(incoming.Name, stored.Name)

	if incoming.Profile != nil {
		if stored.Profile == nil {
			stored.Profile = &Profile{}
		}
		mergeProfile(stored.Profile, incoming.Profile)
	}
	if incoming.Overview != nil {
		if stored.Overview == nil {
			stored.Overview = &Overview{}
		}
		mergeOverview(stored.Overview, incoming.Overview)
	}
	if incoming.Goals != nil {
		stored.Goals = incoming.Goals
	}
	if incoming.Accomplishments != nil {
		stored.Accomplishments = incoming.Accomplishments
	}

	if stored.Profile != nil && stored.Profile.Contact != nil {
		RefreshDerived(stored.Profile.Contact)
	}
	stored.MarkModified()
	return stored
}

// MergeContact folds the non-nil fields of incoming into stored, refreshes
// the derived fields, and returns stored.
func MergeContact(stored, incoming *Contact) *Contact {
	stored.Username = coalesce(incoming.Username, stored.Username)
	stored.Email = coalesce(incoming.Email, stored.Email)
	stored.FirstName = coalesce(incoming.FirstName, stored.FirstName)
	stored.LastName = coalesce(incoming.LastName, stored.LastName)
	stored.Address1 = coalesce(incoming.Address1, stored.Address1)
	stored.Address2 = coalesce(incoming.Address2, stored.Address2)
	stored.City = coalesce(incoming.City, stored.City)
	stored.State = coalesce(incoming.State, stored.State)
	stored.PostalCode = coalesce(incoming.PostalCode, stored.PostalCode)
	stored.Country = coalesce(incoming.Country, stored.Country)
	stored.DateOfBirth = coalesceTime(incoming.DateOfBirth, stored.DateOfBirth)
	stored.HomePhone = coalesce(incoming.HomePhone, stored.HomePhone)
	stored.MobilePhone = coalesce(incoming.MobilePhone, stored.MobilePhone)
	stored.Website = coalesce(incoming.Website, stored.Website)

	RefreshDerived(stored)
	return stored
}

// RefreshDerived computes Address and Age when they are unset. Values already
// present are preserved, even when the structured fields they were derived
// from have since changed.
func RefreshDerived(c *Contact) {
	if c.Address == nil || *c.Address == "" {
		addr := derive.GenerateAddress(
			deref(c.Address1), deref(c.Address2),
			deref(c.City), deref(c.State), deref(c.PostalCode), deref(c.Country))
		if addr != "" {
			c.Address = &addr
		}
	}
	if c.Age == nil && c.DateOfBirth != nil {
		age := derive.CalculateAge(*c.DateOfBirth, time.Now().UTC())
		c.Age = &age
	}
}

func mergeProfile(stored, incoming *Profile) {
	if incoming.Contact != nil {
		if stored.Contact == nil {
			stored.Contact = &Contact{}
		}
		MergeContact(stored.Contact, incoming.Contact)
	}
	if incoming.EducationList != nil {
		stored.EducationList = incoming.EducationList
	}
	if incoming.WorkList != nil {
		stored.WorkList = incoming.WorkList
	}
	if incoming.RelationshipList != nil {
		stored.RelationshipList = incoming.RelationshipList
	}
	if incoming.Identity != nil {
		stored.Identity = incoming.Identity
	}
	if incoming.ReligionsList != nil {
		stored.ReligionsList = incoming.ReligionsList
	}
	if incoming.TravelsList != nil {
		stored.TravelsList = incoming.TravelsList
	}
	if incoming.Health != nil {
		stored.Health = incoming.Health
	}
	if incoming.ActivitiesList != nil {
		stored.ActivitiesList = incoming.ActivitiesList
	}
	if incoming.GivingList != nil {
		stored.GivingList = incoming.GivingList
	}
	if incoming.Finances != nil {
		stored.Finances = incoming.Finances
	}
}

func mergeOverview(stored, incoming *Overview) {
	stored.Location = coalesce(incoming.Location, stored.Location)
	if incoming.Education != nil {
		stored.Education = incoming.Education
	}
	if incoming.Work != nil {
		stored.Work = incoming.Work
	}
	if incoming.Relationships != nil {
		stored.Relationships = incoming.Relationships
	}
	if incoming.Identity != nil {
		stored.Identity = incoming.Identity
	}
	if incoming.Religion != nil {
		stored.Religion = incoming.Religion
	}
	if incoming.Travel != nil {
		stored.Travel = incoming.Travel
	}
	if incoming.Health != nil {
		stored.Health = incoming.Health
	}
	if incoming.Hobbies != nil {
		stored.Hobbies = incoming.Hobbies
	}
	if incoming.Giving != nil {
		stored.Giving = incoming.Giving
	}
	if incoming.Finances != nil {
		stored.Finances = incoming.Finances
	}
	if incoming.Housing != nil {
		stored.Housing = incoming.Housing
	}
	stored.Goals = coalesce(incoming.Goals, stored.Goals)
	stored.Achievements = coalesce(incoming.Achievements, stored.Achievements)
	stored.Summary = coalesce(incoming.Summary, stored.Summary)
}

func coalesce(incoming, stored *string) *string {
	if incoming != nil {
		return incoming
	}
	return stored
}

func coalesceTime(incoming, stored *time.Time) *time.Time {
	if incoming != nil {
		return incoming
	}
	return stored
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
