package converter

import "github.com/ALE-Rainbow/apidoc-swagger/apidoc"

// permissionNone marks an endpoint open to everyone.
const permissionNone = "none"

// operationPermissions returns the operation's x-permissions entries and
// registers each permission in the document-wide map on first sight.
func (c *compilation) operationPermissions(rec *apidoc.Record) []map[string]string {
	var out []map[string]string
	for _, p := range rec.Permission {
		if p.Name == permissionNone || p.Name == "" {
			continue
		}
		out = append(out, map[string]string{"name": p.Name})
		if _, ok := c.permissions[p.Name]; !ok {
			c.permissions[p.Name] = permission{
				Name:        p.Name,
				Title:       p.Title,
				Description: c.describe(p.Description),
			}
		}
	}
	return out
}
