package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext_NoCaller(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	WithContext(context.Background()).Info("hello")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "unknown", entry.Data["user"])
	assert.NotContains(t, entry.Data, "tenant_id")
}

func TestWithContext_CallerFields(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	ctx := NewContext(context.Background(), logrus.Fields{"tenant_id": uint(1)})
	ctx = NewContext(ctx, logrus.Fields{"user_id": uint(7), "user": "alice"})

	WithContext(ctx).WithField("farm_id", 3).Info("farm created")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, uint(1), entry.Data["tenant_id"])
	assert.Equal(t, uint(7), entry.Data["user_id"])
	assert.Equal(t, "alice", entry.Data["user"])
	assert.Equal(t, 3, entry.Data["farm_id"])
	assert.Equal(t, "farm created", entry.Message)
}

func TestSetup_Levels(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("error")
	assert.Equal(t, logrus.ErrorLevel, logrus.GetLevel())

	Setup("bogus")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
