package helper_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/conditional_reduce/shared/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTypedValueOf(t *testing.T) {
	v, err := helper.GetTypedValueOf[int](func() (any, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = helper.GetTypedValueOf[int](func() (any, error) { return "seven", nil })
	assert.ErrorContains(t, err, "unexpected type: string")

	boom := errors.New("boom")
	_, err = helper.GetTypedValueOf[int](func() (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}

func TestMust(t *testing.T) {
	assert.Equal(t, "ok", helper.Must(func() (string, error) { return "ok", nil }))
	assert.Panics(t, func() {
		helper.Must(func() (string, error) { return "", errors.New("boom") })
	})
}

func TestOptionalOne(t *testing.T) {
	_, ok := helper.OptionalOne[int](nil, "values")
	assert.False(t, ok)

	v, ok := helper.OptionalOne([]int{3}, "values")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	assert.PanicsWithValue(t, "only one or zero values allowed, got 2", func() {
		helper.OptionalOne([]int{1, 2}, "values")
	})
}
