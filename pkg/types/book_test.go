package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookString(t *testing.T) {
	b := Book{ID: "1", Title: "1984", Author: "George Orwell", YearPublished: 1949}
	assert.Equal(t, "1: 1984 by George Orwell (1949)", b.String())
}
