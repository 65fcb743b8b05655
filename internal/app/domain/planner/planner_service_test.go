package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/mindful-miles/internal/app/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]models.PlannerEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlannerEntry), args.Error(1)
}

func (m *MockRepository) Add(ctx context.Context, e models.PlannerEntry) ([]models.PlannerEntry, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlannerEntry), args.Error(1)
}

func (m *MockRepository) Remove(ctx context.Context, id string) ([]models.PlannerEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlannerEntry), args.Error(1)
}

func TestServiceImpl_Add(t *testing.T) {
	tests := []struct {
		name      string
		input     models.PlannerEntry
		setupMock func(*MockRepository)
		want      []models.PlannerEntry
		wantErr   error
	}{
		{
			name:  "stores entry",
			input: entry("a"),
			setupMock: func(m *MockRepository) {
				m.On("Add", mock.Anything, entry("a")).Return([]models.PlannerEntry{entry("a")}, nil)
			},
			want: []models.PlannerEntry{entry("a")},
		},
		{
			name:  "trims id before storing",
			input: models.PlannerEntry{ID: "  a ", Name: "Spot a", Location: "Rishikesh", Type: "Meditation"},
			setupMock: func(m *MockRepository) {
				m.On("Add", mock.Anything, entry("a")).Return([]models.PlannerEntry{entry("a")}, nil)
			},
			want: []models.PlannerEntry{entry("a")},
		},
		{
			name:      "missing id is a validation error",
			input:     models.PlannerEntry{Name: "No id"},
			setupMock: func(m *MockRepository) {},
			wantErr:   models.ErrValidation,
		},
		{
			name:  "storage failure is wrapped",
			input: entry("a"),
			setupMock: func(m *MockRepository) {
				m.On("Add", mock.Anything, entry("a")).Return(nil, errors.New("disk full"))
			},
			wantErr: errors.New("failed to add planner entry: disk full"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			tt.setupMock(repo)
			svc := NewService(repo, zap.NewNop())

			got, err := svc.Add(context.Background(), tt.input)
			switch {
			case errors.Is(tt.wantErr, models.ErrValidation):
				assert.ErrorIs(t, err, models.ErrValidation)
				repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			case tt.wantErr != nil:
				assert.EqualError(t, err, tt.wantErr.Error())
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestServiceImpl_Remove(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Remove", mock.Anything, "a").Return([]models.PlannerEntry{}, nil)
	svc := NewService(repo, zap.NewNop())

	got, err := svc.Remove(context.Background(), "a")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = svc.Remove(context.Background(), " ")
	assert.ErrorIs(t, err, models.ErrValidation)
	repo.AssertExpectations(t)
}

func TestServiceImpl_List(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("boom")).Once()
	repo.On("List", mock.Anything).Return([]models.PlannerEntry{entry("a")}, nil).Once()
	svc := NewService(repo, zap.NewNop())

	_, err := svc.List(context.Background())
	assert.Error(t, err)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
