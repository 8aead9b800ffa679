package connect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/connect/pkg/connect"
)

func TestRequestDetails_AppendToList(t *testing.T) {
	t.Parallel()

	details := connect.NewRequestDetails()
	require.NoError(t, details.AppendToList("editorial_segments", "news"))
	require.NoError(t, details.AppendToList("editorial_segments", "sport"))

	values, ok := details.List("editorial_segments")
	require.True(t, ok)
	assert.Equal(t, []string{"news", "sport"}, values)
	assert.Equal(t, "editorial_segments=news,sport", details.Encode())
}

func TestRequestDetails_AppendKeepsDuplicates(t *testing.T) {
	t.Parallel()

	details := connect.NewRequestDetails()
	require.NoError(t, details.AppendToList("editorial_segments", "news", "news"))

	assert.Equal(t, "editorial_segments=news,news", details.Encode())
}

func TestRequestDetails_SetScalarLastWriteWins(t *testing.T) {
	t.Parallel()

	details := connect.NewRequestDetails()
	require.NoError(t, details.SetScalar("page", "1"))
	require.NoError(t, details.SetScalar("page", "2"))

	value, ok := details.Scalar("page")
	require.True(t, ok)
	assert.Equal(t, "2", value)
	assert.Equal(t, "page=2", details.Encode())
	assert.Equal(t, 1, details.Len())
}

func TestRequestDetails_MixedKindRejected(t *testing.T) {
	t.Parallel()

	t.Run("scalar over list", func(t *testing.T) {
		t.Parallel()

		details := connect.NewRequestDetails()
		require.NoError(t, details.AppendToList("ids", "1"))

		err := details.SetScalar("ids", "2")
		require.ErrorIs(t, err, connect.ErrMixedParameterKind)

		_, isScalar := details.Scalar("ids")
		assert.False(t, isScalar)
		assert.Equal(t, "ids=1", details.Encode())
	})

	t.Run("list over scalar", func(t *testing.T) {
		t.Parallel()

		details := connect.NewRequestDetails()
		require.NoError(t, details.SetScalar("phrase", "cats"))

		err := details.AppendToList("phrase", "dogs")
		require.ErrorIs(t, err, connect.ErrMixedParameterKind)
		assert.Equal(t, "phrase=cats", details.Encode())
	})
}

func TestRequestDetails_EncodeSortsAndEscapes(t *testing.T) {
	t.Parallel()

	details := connect.NewRequestDetails()
	require.NoError(t, details.SetScalar("phrase", "fish & chips"))
	require.NoError(t, details.SetScalar("page_size", "10"))
	require.NoError(t, details.AppendToList("specific_people", "Ann Lee", "Bo/Ek"))

	assert.Equal(t, []string{"page_size", "phrase", "specific_people"}, details.Keys())
	assert.Equal(t, "page_size=10&phrase=fish+%26+chips&specific_people=Ann+Lee,Bo%2FEk", details.Encode())
}

func TestRequestDetails_EmptyEncode(t *testing.T) {
	t.Parallel()

	details := connect.NewRequestDetails()
	assert.Empty(t, details.Encode())
	assert.Equal(t, 0, details.Len())
}

func TestRequestDetails_CloneIsDeep(t *testing.T) {
	t.Parallel()

	details := connect.NewRequestDetails()
	require.NoError(t, details.AppendToList("ids", "1"))
	require.NoError(t, details.SetScalar("phrase", "cats"))

	clone := details.Clone()
	require.NoError(t, clone.AppendToList("ids", "2"))
	require.NoError(t, clone.SetScalar("phrase", "dogs"))

	assert.Equal(t, "ids=1&phrase=cats", details.Encode())
	assert.Equal(t, "ids=1,2&phrase=dogs", clone.Encode())
}

func TestRequestDetails_ListReturnsCopy(t *testing.T) {
	t.Parallel()

	details := connect.NewRequestDetails()
	require.NoError(t, details.AppendToList("ids", "1"))

	values, _ := details.List("ids")
	values[0] = "mutated"

	assert.Equal(t, "ids=1", details.Encode())
}
