package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zov-lang/zov/pkg/lang"
)

func TestRenderAST(t *testing.T) {
	doc, err := lang.Parse(`
$base = 10;
server {
    host = "localhost";
    limit = $base * 2;
    db { name = concat("app", "-", "db"); }
}`, ".")
	require.NoError(t, err)

	out := RenderAST(doc, false)
	assert.Contains(t, out, "server {}")
	assert.Contains(t, out, `host = "localhost";`)
	assert.Contains(t, out, "limit = ($base * 2);")
	assert.Contains(t, out, `name = concat("app", "-", "db");`)
	assert.Contains(t, out, "$base = 10;")
}

func TestRenderASTInterpolatedString(t *testing.T) {
	doc, err := lang.Parse(`m { url = "http://$host:${port}"; }`, ".")
	require.NoError(t, err)

	out := RenderAST(doc, false)
	assert.Contains(t, out, `url = "http://$host:${port}";`)
}
