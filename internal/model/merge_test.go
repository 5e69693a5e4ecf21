package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func storedUser() *AppUser {
	u := NewAppUser("caller-1")
	u.Username = strp("jdoe")
	u.Name = strp("Jane Doe")
	u.Profile = &Profile{
		Contact: &Contact{
			Email:     strp("jane@example.com"),
			FirstName: strp("Jane"),
			City:      strp("Springfield"),
		},
	}
	u.Goals = []Goal{{ID: "g1", Owner: "caller-1", Description: "run a marathon"}}
	return u
}

func TestMergeUser_NonNilFieldWins(t *testing.T) {
	stored := storedUser()
	incoming := &AppUser{
		Name: strp("Jane Q. Doe"),
		Profile: &Profile{
			Contact: &Contact{LastName: strp("Doe")},
		},
	}

	out := MergeUser(stored, incoming)

	assert.Equal(t, "Jane Q. Doe", *out.Name)
	assert.Equal(t, "jdoe", *out.Username, "nil incoming field must not clobber stored value")
	assert.Equal(t, "jane@example.com", *out.Profile.Contact.Email)
	assert.Equal(t, "Doe", *out.Profile.Contact.LastName)
	assert.Equal(t, "Springfield", *out.Profile.Contact.City)
}

func TestMergeUser_IdentityNeverCopied(t *testing.T) {
	stored := storedUser()
	created := *stored.CreatedAt
	incoming := &AppUser{ID: "attacker-7", Name: strp("x")}

	out := MergeUser(stored, incoming)

	assert.Equal(t, "caller-1", out.ID)
	assert.Equal(t, created, *out.CreatedAt)
}

func TestMergeUser_StampsModifiedAt(t *testing.T) {
	stored := storedUser()
	require.Nil(t, stored.ModifiedAt)

	out := MergeUser(stored, &AppUser{})

	require.NotNil(t, out.ModifiedAt)
	assert.WithinDuration(t, time.Now().UTC(), *out.ModifiedAt, 5*time.Second)
}

func TestMergeUser_Idempotent(t *testing.T) {
	incoming := &AppUser{
		Name: strp("Jane Q. Doe"),
		Profile: &Profile{
			Contact: &Contact{LastName: strp("Doe"), City: strp("Shelbyville")},
		},
		Goals: []Goal{{ID: "g2", Owner: "caller-1", Description: "learn Go"}},
	}

	once := MergeUser(storedUser(), incoming)
	twice := MergeUser(MergeUser(storedUser(), incoming), incoming)

	// Modification stamps differ between runs; the merged content must not.
	once.ModifiedAt = nil
	twice.ModifiedAt = nil
	assert.Equal(t, once, twice)
}

func TestMergeUser_ListsReplaceWholesale(t *testing.T) {
	stored := storedUser()
	incoming := &AppUser{
		Goals: []Goal{{ID: "g9", Owner: "caller-1", Description: "new list"}},
	}

	out := MergeUser(stored, incoming)

	require.Len(t, out.Goals, 1)
	assert.Equal(t, "g9", out.Goals[0].ID)
}

func TestMergeContact_DerivedAddress(t *testing.T) {
	stored := &Contact{}
	incoming := &Contact{
		Address1:   strp("123 Main St"),
		City:       strp("Springfield"),
		State:      strp("IL"),
		PostalCode: strp("62704"),
	}

	out := MergeContact(stored, incoming)

	require.NotNil(t, out.Address)
	assert.Equal(t, "123 Main St\nSpringfield, IL 62704", *out.Address)
}

func TestMergeContact_DerivedFieldsPreservedOnceSet(t *testing.T) {
	age := 30
	stored := &Contact{
		Address: strp("Already Set Address"),
		Age:     &age,
	}
	dob := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	incoming := &Contact{
		Address1:    strp("123 Main St"),
		City:        strp("Springfield"),
		State:       strp("IL"),
		PostalCode:  strp("62704"),
		DateOfBirth: &dob,
	}

	out := MergeContact(stored, incoming)

	assert.Equal(t, "Already Set Address", *out.Address)
	assert.Equal(t, 30, *out.Age)
}

func TestMergeContact_AgeComputedWhenUnset(t *testing.T) {
	dob := time.Now().UTC().AddDate(-40, 0, -1)
	out := MergeContact(&Contact{}, &Contact{DateOfBirth: &dob})

	require.NotNil(t, out.Age)
	assert.Equal(t, 40, *out.Age)
}

func TestRefreshDerived_NoInputsNoOutputs(t *testing.T) {
	c := &Contact{}
	RefreshDerived(c)
	assert.Nil(t, c.Address)
	assert.Nil(t, c.Age)
}
