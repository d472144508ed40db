// Package git wraps the Git CLI calls phpclass needs: discovering the
// repository top level used as the workspace root and staging created
// files. It does not depend on other internal packages.
package git
