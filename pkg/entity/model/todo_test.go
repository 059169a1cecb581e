package model_test

import (
	"encoding/json"
	"testing"

	"todo-go-backend/pkg/entity/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalString_UnmarshalJSON(t *testing.T) {
	type body struct {
		Description model.OptionalString `json:"description"`
	}

	tests := []struct {
		name   string
		raw    string
		assert func(t *testing.T, got model.OptionalString)
	}{
		{
			name: "omitted",
			raw:  `{}`,
			assert: func(t *testing.T, got model.OptionalString) {
				assert.False(t, got.Set)
				assert.Nil(t, got.Value)
			},
		},
		{
			name: "explicit null",
			raw:  `{"description": null}`,
			assert: func(t *testing.T, got model.OptionalString) {
				assert.True(t, got.Set)
				assert.Nil(t, got.Value)
			},
		},
		{
			name: "value",
			raw:  `{"description": "2 litres"}`,
			assert: func(t *testing.T, got model.OptionalString) {
				assert.True(t, got.Set)
				require.NotNil(t, got.Value)
				assert.Equal(t, "2 litres", *got.Value)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b body
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &b))
			tt.assert(t, b.Description)
		})
	}

	var b body
	assert.Error(t, json.Unmarshal([]byte(`{"description": 3}`), &b))
}

func TestPatchTodoInput_Apply(t *testing.T) {
	desc := "old"
	current := model.Todo{ID: 1, Title: "Buy milk", Description: &desc}
	done := true

	assert.True(t, model.PatchTodoInput{ID: 1}.IsEmpty())
	assert.Equal(t, current, model.PatchTodoInput{ID: 1}.Apply(current))

	got := model.PatchTodoInput{ID: 1, Done: &done}.Apply(current)
	assert.Equal(t, model.Todo{ID: 1, Title: "Buy milk", Description: &desc, Done: true}, got)

	got = model.PatchTodoInput{ID: 1, Description: model.NullOptionalString()}.Apply(current)
	assert.Nil(t, got.Description)
	assert.Equal(t, "Buy milk", got.Title)
}

func TestTodo_JSON(t *testing.T) {
	b, err := json.Marshal(model.Todo{ID: 1, Title: "Buy milk"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"title":"Buy milk","description":null,"done":false}`, string(b))
}
