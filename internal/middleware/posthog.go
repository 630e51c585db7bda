package middleware

import (
	"net/http"
	"path"
	"strings"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/SscSPs/multinav_crm/internal/utils"
	"github.com/gin-gonic/gin"
)

// demoDistinctID groups every demo-mode request under one analytics identity.
const demoDistinctID = "demo"

// PortalDistinctID groups every client portal request. Client ids stay out
// of analytics.
const PortalDistinctID = "client-portal"

// PosthogMiddleware records one product event per successful API request:
// report views, exports and record changes. Properties carry the route
// shape, the role and the status only; record ids and query values never
// leave the process.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		actor, ok := ActorFromContext(c)
		if !ok {
			return
		}
		event, props := productEvent(c.Request.Method, c.FullPath())
		if event == "" {
			return
		}

		distinctID := demoDistinctID
		props["demo"] = actor == nil
		if actor != nil {
			distinctID = actor.ID
			if actor.Role == domain.RoleClient {
				distinctID = PortalDistinctID
			}
			props["role"] = string(actor.Role)
		}
		props["status_code"] = c.Writer.Status()
		posthogClient.Enqueue(distinctID, event, props)
	}
}

// productEvent names the event for a matched route such as
// "/api/v1/reports/program/insights" or "/api/v1/clients/:id". Nested
// routes name every fixed segment, so "/clients/:id/messages" is
// "clients_messages". Unmatched routes yield "".
func productEvent(method, route string) (string, map[string]any) {
	rest, found := strings.CutPrefix(route, "/api/v1/")
	if !found || rest == "" {
		return "", nil
	}
	segments := strings.Split(rest, "/")
	resource := segments[0]
	if resource == "auth" || resource == "me" {
		return "", nil // sign-in events are sent by the auth handlers
	}
	props := map[string]any{"resource": resource}

	if ext := path.Ext(rest); strings.HasPrefix(path.Base(rest), "export.") {
		props["format"] = strings.TrimPrefix(ext, ".")
		if resource == "reports" && len(segments) > 1 {
			props["report"] = segments[1]
		}
		return "export_downloaded", props
	}
	if resource == "reports" {
		props["report"] = strings.Join(segments[1:], "_")
		return "report_viewed", props
	}

	var fixed []string
	for _, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			fixed = append(fixed, seg)
		}
	}
	last := segments[len(segments)-1]
	if method == http.MethodPut && last == "read" {
		return strings.Join(fixed[:len(fixed)-1], "_") + "_marked_read", props
	}
	subject := strings.Join(fixed, "_")

	switch method {
	case http.MethodPost:
		return subject + "_created", props
	case http.MethodPut:
		return subject + "_updated", props
	case http.MethodDelete:
		return subject + "_deleted", props
	}
	if strings.HasPrefix(last, ":") {
		return subject + "_viewed", props
	}
	return subject + "_listed", props
}
