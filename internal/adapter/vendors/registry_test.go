package vendors

import (
	"testing"

	"telco-billing/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRegistry_Lookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	commio := mocks.NewMockVendorIntegration(ctrl)
	commio.EXPECT().Name().Return("Commio").AnyTimes()

	r := NewRegistry(commio)

	tests := []struct {
		name  string
		found bool
	}{
		{"Commio", true},
		{"commio", true},
		{" COMMIO ", true},
		{"Bandwidth", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Lookup(tt.name)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Same(t, commio, got)
			}
		})
	}
}

func TestRegistry_Names(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mocks.NewMockVendorIntegration(ctrl)
	a.EXPECT().Name().Return("Telnyx").AnyTimes()
	b := mocks.NewMockVendorIntegration(ctrl)
	b.EXPECT().Name().Return("Commio").AnyTimes()

	r := NewRegistry(a, b)
	assert.Equal(t, []string{"Commio", "Telnyx"}, r.Names())
}
