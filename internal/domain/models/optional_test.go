package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDistinguishesAbsentNullAndValue(t *testing.T) {
	type payload struct {
		Description Optional[string] `json:"description"`
	}

	var absent payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.Description.Defined)

	var null payload
	require.NoError(t, json.Unmarshal([]byte(`{"description": null}`), &null))
	assert.True(t, null.Description.Defined)
	assert.Nil(t, null.Description.Value)

	var set payload
	require.NoError(t, json.Unmarshal([]byte(`{"description": "gudang"}`), &set))
	assert.True(t, set.Description.Defined)
	require.NotNil(t, set.Description.Value)
	assert.Equal(t, "gudang", *set.Description.Value)
}

func TestOptionalGet(t *testing.T) {
	var o Optional[int]
	_, ok := o.Get()
	assert.False(t, ok)

	require.NoError(t, json.Unmarshal([]byte(`null`), &o))
	_, ok = o.Get()
	assert.False(t, ok)

	require.NoError(t, json.Unmarshal([]byte(`42`), &o))
	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestOptionalRejectsWrongType(t *testing.T) {
	var o Optional[int]
	assert.Error(t, json.Unmarshal([]byte(`"not a number"`), &o))
}
