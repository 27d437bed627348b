package catalogs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawServiceJSON = `{"id":7,"serviceName":"Pad","softwareName":"HedgeDoc","extraField":"keep me"}`

func TestRawService_JSON(t *testing.T) {
	var raw []RawService
	require.NoError(t, json.Unmarshal([]byte("["+rawServiceJSON+"]"), &raw))
	require.Len(t, raw, 1)

	data := Compile(nil, raw)
	out, err := json.Marshal(data)
	require.NoError(t, err)
	assert.Equal(t, `{"catalog":[],"services":[`+rawServiceJSON+`]}`, string(out))
}

func TestRawService_Decode(t *testing.T) {
	svc, err := RawService(rawServiceJSON).Decode()
	require.NoError(t, err)
	assert.Equal(t, ServiceID(7), svc.ID)
	require.NotNil(t, svc.SoftwareName)
	assert.Equal(t, "HedgeDoc", *svc.SoftwareName)

	_, err = RawService(`{"id":"seven"}`).Decode()
	assert.Error(t, err)
}

func TestRawService_YAML(t *testing.T) {
	out, err := yaml.Marshal(Compile(nil, []RawService{RawService(rawServiceJSON)}))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "extraField: keep me")
	assert.Contains(t, content, "softwareName: HedgeDoc")
	assert.NotContains(t, content, "agencyName")
	assert.Less(t, strings.Index(content, "serviceName"), strings.Index(content, "extraField"), "input key order is kept")
}
