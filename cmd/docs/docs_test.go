package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocRegistered(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "2.0", parsed["swagger"])
	assert.Equal(t, "/api/v1", parsed["basePath"])
	assert.Contains(t, parsed["securityDefinitions"], "BearerAuth")

	info, ok := parsed["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "MultiNav CRM API", info["title"])
}
