// Package docs registers the swagger document served at /swagger/index.html.
// Regenerate with `swag init -g cmd/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/register": {"post": {"tags": ["Auth"], "summary": "Register a student account", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}, "409": {"description": "Roll number already registered"}}}},
        "/auth/login": {"post": {"tags": ["Auth"], "summary": "Log in", "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid username or password"}}}},
        "/auth/logout": {"post": {"tags": ["Auth"], "summary": "Log out", "responses": {"200": {"description": "OK"}}}},
        "/departments": {"get": {"tags": ["Departments"], "summary": "List departments", "responses": {"200": {"description": "OK"}}}},
        "/student/questions": {"get": {"tags": ["Student - Survey"], "summary": "Get the questionnaire", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/student/survey": {
            "get": {"tags": ["Student - Survey"], "summary": "Get my response", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "No response yet"}}},
            "post": {"tags": ["Student - Survey"], "summary": "Submit survey answers", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "No valid answers or value out of range"}, "409": {"description": "Survey already submitted"}}},
            "delete": {"tags": ["Student - Survey"], "summary": "Clear my response", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "No response to clear"}}}
        },
        "/admin/questions": {
            "get": {"tags": ["Admin - Questions"], "summary": "List questions", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Admin - Questions"], "summary": "Create a question", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/admin/questions/{id}": {
            "put": {"tags": ["Admin - Questions"], "summary": "Update a question", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "delete": {"tags": ["Admin - Questions"], "summary": "Delete a question", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/admin/stats": {"get": {"tags": ["Admin - Analytics"], "summary": "Dashboard rollup", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/admin/responses": {"get": {"tags": ["Admin - Analytics"], "summary": "List responses", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/admin/responses/{id}": {"get": {"tags": ["Admin - Analytics"], "summary": "Response detail", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}},
        "/admin/insights": {"get": {"tags": ["Admin - Analytics"], "summary": "Generated recommendations", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "502": {"description": "Generator failed"}, "503": {"description": "Generator not configured"}}}},
        "/admin/students": {"get": {"tags": ["Admin - Students"], "summary": "List students", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/admin/students/{id}": {"delete": {"tags": ["Admin - Students"], "summary": "Delete a student", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "CampusPulse Survey API",
	Description:      "Student happiness survey with scoring, department rollups and admin analytics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
