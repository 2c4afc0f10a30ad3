package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginated(t *testing.T) {
	t.Run("halaman kedua", func(t *testing.T) {
		p := NewPaginated([]int{11, 12, 13}, 3, 2, 10, 23)
		assert.Equal(t, 3, p.LastPage)
		require.NotNil(t, p.From)
		assert.Equal(t, 11, *p.From)
		assert.Equal(t, 13, *p.To)
	})

	t.Run("melewati halaman terakhir", func(t *testing.T) {
		p := NewPaginated([]int{}, 0, 5, 10, 23)
		assert.Equal(t, 3, p.LastPage)
		assert.Nil(t, p.From)
		assert.Nil(t, p.To)
	})

	t.Run("tanpa data", func(t *testing.T) {
		p := NewPaginated([]int{}, 0, 1, 10, 0)
		assert.Equal(t, 1, p.LastPage)
	})
}

func TestValidationFailed(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationFailed(rec, map[string][]string{"nik": {"NIK sudah terdaftar."}})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"NIK sudah terdaftar."}, body["nik"])
}

func TestList_EmptyDataIsArray(t *testing.T) {
	rec := httptest.NewRecorder()
	List(rec, NewPaginated([]string{}, 0, 9, 10, 4))

	assert.Contains(t, rec.Body.String(), `"data":[]`)
	assert.Contains(t, rec.Body.String(), `"from":null`)
}
