package template

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckResource(t *testing.T) {
	doc := DefaultDocument()
	doc.Resources["svc"] = Resource{"Type": ServiceType}
	doc.Resources["domain"] = Resource{"Type": CustomDomainType}
	doc.Resources["bucket"] = Resource{"Type": "ALIYUN::OSS::Bucket"}
	doc.Resources["empty"] = nil

	tests := []struct {
		name     string
		resource string
		wantErr  string
	}{
		{name: "free name", resource: "other"},
		{name: "null descriptor is free", resource: "empty"},
		{
			name:     "service collision",
			resource: "svc",
			wantErr:  "the service that needs to be imported already exists: svc",
		},
		{
			name:     "custom domain collision",
			resource: "domain",
			wantErr:  "the custom domain that needs to be imported already exists: domain",
		},
		{
			name:     "generic collision",
			resource: "bucket",
			wantErr:  "the resource that needs to be imported already exists: bucket, type: ALIYUN::OSS::Bucket",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := doc.CheckResource(tt.resource)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.True(t, errors.Is(err, ErrResourceExists))

			var collision *ResourceCollisionError
			require.True(t, errors.As(err, &collision))
			assert.Equal(t, tt.resource, collision.Name)
		})
	}
}

func TestAddResource(t *testing.T) {
	t.Run("adds to empty document", func(t *testing.T) {
		doc := &Document{}
		require.NoError(t, doc.AddResource("svc", Resource{"Type": ServiceType}))
		assert.Equal(t, ServiceType, doc.Resources["svc"].Type())
	})

	t.Run("refuses duplicates and keeps original", func(t *testing.T) {
		doc := DefaultDocument()
		require.NoError(t, doc.AddResource("svc", Resource{"Type": ServiceType, "v": 1}))

		err := doc.AddResource("svc", Resource{"Type": ServiceType, "v": 2})
		assert.True(t, errors.Is(err, ErrResourceExists))
		assert.Equal(t, 1, doc.Resources["svc"]["v"])
	})
}

func TestResource_Type(t *testing.T) {
	assert.Equal(t, "", Resource(nil).Type())
	assert.Equal(t, "", Resource{}.Type())
	assert.Equal(t, ServiceType, Resource{"Type": ServiceType}.Type())
	assert.Equal(t, "42", Resource{"Type": 42}.Type())
}

func TestResource_SetIfPresent(t *testing.T) {
	res := Resource{}
	res.SetIfPresent("CodeUri", "./svc/fn")
	res.SetIfPresent("Description", "")
	res.SetIfPresent("Timeout", 0)
	res.SetIfPresent("Handler", nil)
	res.SetIfPresent("Debug", false)
	res.SetIfPresent("MemorySize", 512)

	assert.Equal(t, Resource{"CodeUri": "./svc/fn", "MemorySize": 512}, res)

	var nilRes Resource
	assert.NotPanics(t, func() { nilRes.SetIfPresent("k", "v") })
}

func TestResourceNames(t *testing.T) {
	doc := DefaultDocument()
	doc.Resources["b"] = Resource{}
	doc.Resources["a"] = Resource{}
	doc.Resources["c"] = Resource{}
	assert.Equal(t, []string{"a", "b", "c"}, doc.ResourceNames())
	assert.Empty(t, DefaultDocument().ResourceNames())
}

func TestCodeURI(t *testing.T) {
	assert.Equal(t, "./svc/fn", CodeURI("svc", "fn"))
}
