// Package routepath names the site paths the gallery links to or serves.
package routepath

const (
	Root       = "/"
	About      = "/about"
	Garden     = "/garden"
	Stylesheet = "/garden/styles.css"
	Static     = "/static"
	Health     = "/health"
	Metrics    = "/metrics"

	APIProjects = "/api/projects"
)

// StaticAsset returns the served path of an embedded asset.
func StaticAsset(name string) string {
	return Static + "/" + name
}
