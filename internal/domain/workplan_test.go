package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkPlan_ComputeHours_DocenciaPlusGenericEntries(t *testing.T) {
	p := &WorkPlan{
		Entries: []PlanEntry{
			{Block: BlockDocencia, SubjectID: "SUBJ-1", Hours: 4},
			{Block: BlockDocencia, SubjectID: "SUBJ-2", Hours: 6},
			{Block: BlockApoyoDocencia, Description: "Monitorías"},
			{Block: BlockApoyoDocencia, Description: "Tutorías"},
		},
	}

	h := p.ComputeHours()

	assert.Equal(t, 10, h.Docencia, "docencia sums literal subject hours")
	assert.Equal(t, 4, h.ApoyoDocencia, "each generic entry counts fixed hours")
	assert.Equal(t, 14, h.Total)
}

func TestWorkPlan_ComputeHours_IgnoresStaleCache(t *testing.T) {
	p := &WorkPlan{
		// A stale, wildly wrong cache must not leak into the result.
		CalculatedHours: BlockHours{Total: 999},
		Entries: []PlanEntry{
			{Block: BlockInvestigacion, Description: "Semillero"},
		},
	}

	h := p.ComputeHours()
	assert.Equal(t, GenericEntryHours, h.Investigacion)
	assert.Equal(t, GenericEntryHours, h.Total)
}

func TestWorkPlan_ComputeHours_EmptyPlan(t *testing.T) {
	p := &WorkPlan{}
	assert.Equal(t, BlockHours{}, p.ComputeHours())
}

func TestWorkPlan_EntriesIn(t *testing.T) {
	p := &WorkPlan{
		Entries: []PlanEntry{
			{ID: "a", Block: BlockDocencia},
			{ID: "b", Block: BlockGestion},
			{ID: "c", Block: BlockDocencia},
		},
	}

	docencia := p.EntriesIn(BlockDocencia)
	assert.Len(t, docencia, 2)
	assert.Equal(t, "a", docencia[0].ID)
	assert.Equal(t, "c", docencia[1].ID)
	assert.Empty(t, p.EntriesIn(BlockPDI))
}

func TestWorkPlan_Editable(t *testing.T) {
	assert.True(t, (&WorkPlan{Status: PlanDraft}).Editable())
	assert.True(t, (&WorkPlan{Status: PlanApproved}).Editable())
	assert.False(t, (&WorkPlan{Status: PlanSigned}).Editable())
}

func TestVinculationType_DefaultDedication(t *testing.T) {
	assert.Equal(t, 40, VinculationPlanta.DefaultDedication())
	assert.Equal(t, 30, VinculationOcasional.DefaultDedication())
	assert.Equal(t, 20, VinculationCatedra.DefaultDedication())
	assert.Equal(t, 20, VinculationType("desconocido").DefaultDedication())
}
