package author

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bookcatalog-backend/internal/shared"
)

func TestCreateAuthorRequestValidate(t *testing.T) {
	valid := CreateAuthorRequest{
		Name:      "Haruki",
		BirthDate: shared.NewDate(1949, time.January, 12),
	}
	assert.NoError(t, valid.Validate())

	missingName := valid
	missingName.Name = ""
	assert.Error(t, missingName.Validate())

	blankName := valid
	blankName.Name = "   "
	assert.Error(t, blankName.Validate())

	missingDate := valid
	missingDate.BirthDate = shared.Date{}
	assert.Error(t, missingDate.Validate())
}

func TestUpdateAuthorRequestValidate(t *testing.T) {
	name := "New Name"
	assert.NoError(t, UpdateAuthorRequest{NewName: &name}.Validate())
	assert.NoError(t, UpdateAuthorRequest{}.Validate(), "emptiness is the service's call, not validation's")

	blank := "  "
	assert.Error(t, UpdateAuthorRequest{NewName: &blank}.Validate())
}

func TestUpdateAuthorRequestIsEmpty(t *testing.T) {
	assert.True(t, UpdateAuthorRequest{}.IsEmpty())

	name := "x"
	assert.False(t, UpdateAuthorRequest{NewName: &name}.IsEmpty())

	d := shared.NewDate(2000, time.May, 1)
	assert.False(t, UpdateAuthorRequest{NewBirthDate: &d}.IsEmpty())
}

func TestUpdateAuthorRequestApplyTo(t *testing.T) {
	a := &Author{ID: 1, Name: "Old", BirthDate: shared.NewDate(1980, time.April, 2)}

	name := "New"
	(&UpdateAuthorRequest{NewName: &name}).ApplyTo(a)

	assert.Equal(t, "New", a.Name)
	assert.True(t, a.BirthDate.Equal(shared.NewDate(1980, time.April, 2)))
}
