package tickets

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/greencycle/ecopoints/pkg/clients"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := clients.NewMockHTTPClientI(ctrl)
	client := New("http://localhost:8082", httpClient)
	return client, httpClient
}

func TestIssue(t *testing.T) {
	client, httpClient := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedRef   string
		expectedError string
	}{
		{
			name: "Successful issuance",
			prepareMock: func() {
				httpClient.EXPECT().
					Post(gomock.Any(), "http://localhost:8082/api/tickets", nil, gomock.Any()).
					Return(http.StatusCreated, []byte(`{"ref":"TCK-42"}`), nil)
			},
			expectedRef: "TCK-42",
		},
		{
			name: "Ticket system unreachable",
			prepareMock: func() {
				httpClient.EXPECT().
					Post(gomock.Any(), "http://localhost:8082/api/tickets", nil, gomock.Any()).
					Return(0, nil, errors.New("connection refused"))
			},
			expectedError: "ticket system unreachable",
		},
		{
			name: "Unexpected status code",
			prepareMock: func() {
				httpClient.EXPECT().
					Post(gomock.Any(), "http://localhost:8082/api/tickets", nil, gomock.Any()).
					Return(http.StatusInternalServerError, nil, nil)
			},
			expectedError: "ticket system returned status 500",
		},
		{
			name: "Malformed response",
			prepareMock: func() {
				httpClient.EXPECT().
					Post(gomock.Any(), "http://localhost:8082/api/tickets", nil, gomock.Any()).
					Return(http.StatusOK, []byte(`not json`), nil)
			},
			expectedError: "failed to parse ticket response",
		},
		{
			name: "Empty ref",
			prepareMock: func() {
				httpClient.EXPECT().
					Post(gomock.Any(), "http://localhost:8082/api/tickets", nil, gomock.Any()).
					Return(http.StatusOK, []byte(`{"ref":""}`), nil)
			},
			expectedError: "ticket system returned empty ref",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			ref, err := client.Issue(context.Background(), 1, "Redemption: Steel bottle", 3000)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedRef, ref)
		})
	}
}

func TestCancel(t *testing.T) {
	client, httpClient := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError string
	}{
		{
			name: "Successful cancellation",
			prepareMock: func() {
				httpClient.EXPECT().
					Delete(gomock.Any(), "http://localhost:8082/api/tickets/TCK-42", nil).
					Return(http.StatusNoContent, nil)
			},
		},
		{
			name: "Ticket system unreachable",
			prepareMock: func() {
				httpClient.EXPECT().
					Delete(gomock.Any(), "http://localhost:8082/api/tickets/TCK-42", nil).
					Return(0, errors.New("connection refused"))
			},
			expectedError: "ticket system unreachable",
		},
		{
			name: "Unexpected status code",
			prepareMock: func() {
				httpClient.EXPECT().
					Delete(gomock.Any(), "http://localhost:8082/api/tickets/TCK-42", nil).
					Return(http.StatusNotFound, nil)
			},
			expectedError: "ticket system returned status 404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := client.Cancel(context.Background(), "TCK-42")

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
