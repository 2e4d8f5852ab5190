// Package docs registers the OpenAPI document served by the Swagger UI.
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
    "paths": {
        "/analyses": {
            "post": {
                "description": "Parses the export in the body and returns every derived table.\nPer-user tables honor the sender filter; busy senders are only reported for Overall.",
                "consumes": ["text/plain"],
                "produces": ["application/json"],
                "tags": ["Analyses"],
                "summary": "Analyze a chat export",
                "operationId": "postAnalysis",
                "parameters": [
                    {"type": "string", "default": "Overall", "description": "Sender filter (Overall for everyone)", "name": "sender", "in": "query"},
                    {"maximum": 50, "minimum": 1, "type": "integer", "default": 5, "description": "Topics to fit", "name": "topics", "in": "query"},
                    {"maximum": 100, "minimum": 1, "type": "integer", "default": 10, "description": "Terms per topic", "name": "terms", "in": "query"},
                    {"type": "boolean", "default": false, "description": "Skip malformed lines", "name": "lenient", "in": "query"},
                    {"description": "Raw chat export", "name": "body", "in": "body", "required": true, "schema": {"type": "string"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.Report"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "413": {"description": "Export too large", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Export could not be parsed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/analyses/senders": {
            "post": {
                "description": "Returns \"Overall\" followed by every sender in collation order.",
                "consumes": ["text/plain"],
                "produces": ["application/json"],
                "tags": ["Analyses"],
                "summary": "List senders in a chat export",
                "operationId": "postSenders",
                "parameters": [
                    {"type": "boolean", "default": false, "description": "Skip malformed lines", "name": "lenient", "in": "query"},
                    {"description": "Raw chat export", "name": "body", "in": "body", "required": true, "schema": {"type": "string"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SendersResponse"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "413": {"description": "Export too large", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Export could not be parsed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/analyses/{table}": {
            "post": {
                "description": "Tables: stats, busy-senders, monthly-timeline, daily-timeline, week-activity,\nmonth-activity, heatmap, wordcloud, common-words, emojis, sentiment, topics.",
                "consumes": ["text/plain"],
                "produces": ["application/json"],
                "tags": ["Analyses"],
                "summary": "Compute one table of a chat export",
                "operationId": "postTable",
                "parameters": [
                    {"type": "string", "description": "Table name", "name": "table", "in": "path", "required": true},
                    {"type": "string", "default": "Overall", "description": "Sender filter (Overall for everyone)", "name": "sender", "in": "query"},
                    {"maximum": 50, "minimum": 1, "type": "integer", "default": 5, "description": "Topics to fit", "name": "topics", "in": "query"},
                    {"maximum": 100, "minimum": 1, "type": "integer", "default": 10, "description": "Terms per topic", "name": "terms", "in": "query"},
                    {"type": "boolean", "default": false, "description": "Skip malformed lines", "name": "lenient", "in": "query"},
                    {"description": "Raw chat export", "name": "body", "in": "body", "required": true, "schema": {"type": "string"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Unknown table", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "413": {"description": "Export too large", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Export could not be parsed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "parse_failed"},
                "message": {"type": "string", "example": "line 3: malformed timestamp"},
                "request_id": {"type": "string", "example": "e1b9be03-4999-4289-9f03-999b042d65d6"}
            }
        },
        "handlers.SendersResponse": {
            "type": "object",
            "properties": {
                "senders": {"type": "array", "items": {"type": "string"}, "example": ["Overall", "Ann", "Zoe"]}
            }
        },
        "services.Report": {
            "type": "object",
            "properties": {
                "sender": {"type": "string"},
                "senders": {"type": "array", "items": {"type": "string"}},
                "records": {"type": "integer"},
                "skipped_lines": {"type": "integer"},
                "stats": {"type": "object"},
                "busy_senders": {"type": "object"},
                "monthly_timeline": {"type": "array", "items": {"type": "object"}},
                "daily_timeline": {"type": "array", "items": {"type": "object"}},
                "week_activity": {"type": "array", "items": {"type": "object"}},
                "month_activity": {"type": "array", "items": {"type": "object"}},
                "heatmap": {"type": "object"},
                "wordcloud": {"type": "object"},
                "common_words": {"type": "array", "items": {"type": "object"}},
                "emojis": {"type": "object"},
                "sentiment": {"type": "object"},
                "topics": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "chatlens API",
	Description:      "Analytics over exported chat logs.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
