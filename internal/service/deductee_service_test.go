package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/domain"
	"taxdesk/internal/port"
	"taxdesk/internal/service"
	"taxdesk/internal/tds"
	"taxdesk/mocks"
)

func newDeducteeService() (service.DeducteeService, *mocks.MockDeducteeRepo) {
	repo := new(mocks.MockDeducteeRepo)
	sections := tds.NewSectionLookup([]port.TDSSectionEntry{
		{Section: "194J", Category: "", Rate: 10, Threshold: 30000},
	})
	return service.NewDeducteeService(repo, sections), repo
}

func validDeducteeInput() tds.DeducteeInput {
	return tds.DeducteeInput{
		Name:       "Acme Services",
		PAN:        "abcde1234f",
		Category:   "company",
		TDSSection: "194J",
		Rate:       10,
		Threshold:  30000,
	}
}

func TestDeducteeCreate_Success(t *testing.T) {
	svc, repo := newDeducteeService()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Deductee")).Return(nil)
	repo.On("List", mock.Anything, "", domain.DeducteeCategory("")).
		Return([]domain.Deductee{{Name: "Acme Services"}}, nil)

	out, fieldErrs, err := svc.Create(context.Background(), validDeducteeInput())
	require.NoError(t, err)
	assert.True(t, fieldErrs.Valid())
	require.NotNil(t, out)

	// PAN is persisted uppercased.
	assert.Equal(t, "ABCDE1234F", out.Deductee.PAN)
	assert.Equal(t, domain.DeducteeActive, out.Deductee.Status)
	repo.AssertExpectations(t)
}

func TestDeducteeCreate_RefetchesList(t *testing.T) {
	svc, repo := newDeducteeService()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("List", mock.Anything, "", domain.DeducteeCategory("")).
		Return([]domain.Deductee{{Name: "Existing Co"}, {Name: "Acme Services"}}, nil)

	out, _, err := svc.Create(context.Background(), validDeducteeInput())
	require.NoError(t, err)

	// The response carries the refreshed full collection, not just the
	// mutated record.
	require.Len(t, out.Deductees, 2)
	repo.AssertCalled(t, "List", mock.Anything, "", domain.DeducteeCategory(""))
}

func TestDeducteeCreate_ValidationFailure(t *testing.T) {
	svc, repo := newDeducteeService()

	in := validDeducteeInput()
	in.PAN = "nope"
	out, fieldErrs, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Contains(t, fieldErrs, "pan")
	// Nothing touches the repository on a validation failure.
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeducteeCreate_RateMasterMismatch(t *testing.T) {
	svc, repo := newDeducteeService()

	in := validDeducteeInput()
	in.Rate = 2
	_, fieldErrs, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "rate")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeducteeCreate_UnknownSectionAllowed(t *testing.T) {
	svc, repo := newDeducteeService()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("List", mock.Anything, "", domain.DeducteeCategory("")).
		Return([]domain.Deductee{}, nil)

	in := validDeducteeInput()
	in.TDSSection = "194ZZ"
	in.Rate = 3.5
	_, fieldErrs, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.True(t, fieldErrs.Valid())
}

func TestDeducteeCreate_DuplicatePAN(t *testing.T) {
	svc, repo := newDeducteeService()
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicatePAN)

	_, _, err := svc.Create(context.Background(), validDeducteeInput())
	assert.ErrorIs(t, err, domain.ErrDuplicatePAN)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeducteeUpdate_NotFound(t *testing.T) {
	svc, repo := newDeducteeService()
	repo.On("GetByID", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	d := domain.Deductee{}
	_, _, err := svc.Update(context.Background(), d.ID, validDeducteeInput())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeducteeUpdate_RefetchesList(t *testing.T) {
	svc, repo := newDeducteeService()
	existing := &domain.Deductee{Name: "Old Name"}
	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)
	repo.On("List", mock.Anything, "", domain.DeducteeCategory("")).
		Return([]domain.Deductee{{Name: "Acme Services"}}, nil)

	out, fieldErrs, err := svc.Update(context.Background(), existing.ID, validDeducteeInput())
	require.NoError(t, err)
	assert.True(t, fieldErrs.Valid())
	require.Len(t, out.Deductees, 1)
	repo.AssertExpectations(t)
}

func TestDeducteeDelete_RefetchesList(t *testing.T) {
	svc, repo := newDeducteeService()
	id := domain.Deductee{}.ID
	repo.On("Delete", mock.Anything, id).Return(nil)
	repo.On("List", mock.Anything, "", domain.DeducteeCategory("")).
		Return([]domain.Deductee{}, nil)

	deductees, err := svc.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, deductees)
	repo.AssertExpectations(t)
}

func TestDeduction_BelowThreshold(t *testing.T) {
	svc, repo := newDeducteeService()
	d := &domain.Deductee{TDSSection: "194J", Rate: 10, Threshold: 30000}
	repo.On("GetByID", mock.Anything, d.ID).Return(d, nil)

	out, err := svc.Deduction(context.Background(), d.ID, 25000)
	require.NoError(t, err)
	assert.Zero(t, out.TDSAmount)
	assert.Equal(t, float64(25000), out.NetPayable)
	assert.True(t, out.SectionKnown)
}

func TestDeduction_AboveThreshold(t *testing.T) {
	svc, repo := newDeducteeService()
	d := &domain.Deductee{TDSSection: "194ZZ", Rate: 10, Threshold: 30000}
	repo.On("GetByID", mock.Anything, d.ID).Return(d, nil)

	out, err := svc.Deduction(context.Background(), d.ID, 50000)
	require.NoError(t, err)
	assert.InDelta(t, 5000, out.TDSAmount, 1e-9)
	assert.InDelta(t, 45000, out.NetPayable, 1e-9)
	// Section absent from the rate master.
	assert.False(t, out.SectionKnown)
}

func TestDeduction_InvalidPayment(t *testing.T) {
	svc, repo := newDeducteeService()

	d := domain.Deductee{}
	_, err := svc.Deduction(context.Background(), d.ID, -100)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
