package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life_score_backend/internal/model"
	"life_score_backend/internal/util"
)

func seedFlags(t *testing.T, meta *fakeMeta, flags []model.BiomarkerFlag) {
	t.Helper()
	raw, err := json.Marshal(flags)
	require.NoError(t, err)
	meta.data[model.MetaKeyFlags] = metaCell{raw: raw, version: 1}
}

func flagFixture(id, biomarker string, status model.FlagStatus) model.BiomarkerFlag {
	return model.BiomarkerFlag{
		ID:        id,
		Biomarker: biomarker,
		Status:    status,
		Source:    model.FlagSourceAuto,
		CreatedAt: serviceNow.Add(-24 * time.Hour),
	}
}

func TestGetFlagsStatusFilter(t *testing.T) {
	meta := newFakeMeta()
	seedFlags(t, meta, []model.BiomarkerFlag{
		flagFixture("f1", "ferritin", model.FlagActive),
		flagFixture("f2", "vitamin_d", model.FlagResolved),
	})
	svc := NewBiomarkerService(meta, 3)

	all, err := svc.GetFlags(1, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := svc.GetFlags(1, model.FlagActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "f1", active[0].ID)
}

func TestGetFlagsEmptyUser(t *testing.T) {
	svc := NewBiomarkerService(newFakeMeta(), 3)
	flags, err := svc.GetFlags(42, "")
	require.NoError(t, err)
	assert.Empty(t, flags)
}

func TestResolveFlag(t *testing.T) {
	meta := newFakeMeta()
	seedFlags(t, meta, []model.BiomarkerFlag{flagFixture("f1", "ferritin", model.FlagActive)})
	svc := NewBiomarkerService(meta, 3)
	svc.now = func() time.Time { return serviceNow }

	resolved, err := svc.ResolveFlag(1, "f1", 99)
	require.NoError(t, err)
	assert.Equal(t, model.FlagResolved, resolved.Status)
	assert.Equal(t, uint(99), resolved.ResolvedBy)
	require.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, serviceNow, *resolved.ResolvedAt)

	var stored []model.BiomarkerFlag
	meta.get(t, model.MetaKeyFlags, &stored)
	require.Len(t, stored, 1)
	assert.Equal(t, model.FlagResolved, stored[0].Status)
}

func TestResolveFlagNotFound(t *testing.T) {
	meta := newFakeMeta()
	seedFlags(t, meta, []model.BiomarkerFlag{flagFixture("f1", "ferritin", model.FlagActive)})
	svc := NewBiomarkerService(meta, 3)

	_, err := svc.ResolveFlag(1, "missing", 99)
	assert.ErrorIs(t, err, util.ErrFlagNotFound)
}

func TestResolveFlagAlreadyResolved(t *testing.T) {
	meta := newFakeMeta()
	seedFlags(t, meta, []model.BiomarkerFlag{flagFixture("f1", "ferritin", model.FlagResolved)})
	svc := NewBiomarkerService(meta, 3)

	_, err := svc.ResolveFlag(1, "f1", 99)
	assert.ErrorIs(t, err, util.ErrFlagAlreadyResolved)
}

func TestResolveFlagRetriesOnConflict(t *testing.T) {
	meta := newFakeMeta()
	seedFlags(t, meta, []model.BiomarkerFlag{flagFixture("f1", "ferritin", model.FlagActive)})
	meta.failWrites = 1
	svc := NewBiomarkerService(meta, 3)

	resolved, err := svc.ResolveFlag(1, "f1", 99)
	require.NoError(t, err)
	assert.Equal(t, model.FlagResolved, resolved.Status)
	assert.Equal(t, 2, meta.writeCalls)
}
