package chat

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

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, message string) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

func TestServiceImpl_Reply(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		setupMock func(*MockGenerator)
		nilGen    bool
		want      string
		wantErr   error
	}{
		{
			name:    "relays reply",
			message: "Where can I meditate in Rishikesh?",
			setupMock: func(m *MockGenerator) {
				m.On("Generate", mock.Anything, "Where can I meditate in Rishikesh?").Return("Try Parmarth Niketan.", nil).Once()
			},
			want: "Try Parmarth Niketan.",
		},
		{
			name:      "empty message",
			message:   "   ",
			setupMock: func(m *MockGenerator) {},
			wantErr:   models.ErrValidation,
		},
		{
			name:      "no credential",
			message:   "hello",
			setupMock: func(m *MockGenerator) {},
			nilGen:    true,
			wantErr:   models.ErrChatNotConfigured,
		},
		{
			name:    "provider failure is generic",
			message: "hello",
			setupMock: func(m *MockGenerator) {
				m.On("Generate", mock.Anything, "hello").Return("", errors.New("quota exceeded for key AIza...")).Once()
			},
			wantErr: models.ErrReplyUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := new(MockGenerator)
			tt.setupMock(gen)
			svc := NewService(gen, zap.NewNop())
			if tt.nilGen {
				svc = NewService(nil, zap.NewNop())
			}

			got, err := svc.Reply(context.Background(), tt.message)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.NotContains(t, err.Error(), "AIza")
				assert.Empty(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			gen.AssertExpectations(t)
		})
	}
}

func TestNewGeminiGenerator_RequiresKey(t *testing.T) {
	g, err := NewGeminiGenerator(context.Background(), "", "gemini-1.5-flash", nil)
	assert.Error(t, err)
	assert.Nil(t, g)
}
