package messages

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewMenu, "menu"},
		{ViewForm, "form"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op       Operation
		expected string
	}{
		{OpSearch, "Search"},
		{OpInsert, "Insert"},
		{OpUpdate, "Update"},
		{OpDelete, "Delete"},
		{Operation(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.op.String())
		})
	}
}

func TestOperation_NeedsName(t *testing.T) {
	assert.False(t, OpSearch.NeedsName())
	assert.True(t, OpInsert.NeedsName())
	assert.True(t, OpUpdate.NeedsName())
	assert.False(t, OpDelete.NeedsName())
}

func TestOperationCompleted(t *testing.T) {
	err := errors.New("boom")
	msg := OperationCompleted{Op: OpDelete, Message: "Deleted.", Err: err, Elapsed: time.Millisecond}

	assert.Equal(t, OpDelete, msg.Op)
	assert.Equal(t, "Deleted.", msg.Message)
	assert.ErrorIs(t, msg.Err, err)
	assert.Equal(t, time.Millisecond, msg.Elapsed)
}
