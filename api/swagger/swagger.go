package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Course Catalog API",
        "description": "Continuing-education course catalog with schedule grouping and filtering",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Courses", "description": "Catalog listing, prefixes and export"},
        {"name": "Auth", "description": "Admin token issuance"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/v1/courses/": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses with grouped schedules",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "prefix", "in": "query", "type": "string"},
                    {"name": "day", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi"},
                    {"name": "start_after", "in": "query", "type": "string"},
                    {"name": "end_before", "in": "query", "type": "string"},
                    {"name": "time_of_day", "in": "query", "type": "string", "enum": ["morning", "afternoon", "evening"]},
                    {"name": "delivery_type", "in": "query", "type": "string"},
                    {"name": "start_date_after", "in": "query", "type": "string"},
                    {"name": "end_date_before", "in": "query", "type": "string"},
                    {"name": "ordering", "in": "query", "type": "string"},
                    {"name": "has_schedules", "in": "query", "type": "boolean"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CoursePage"}}
                }
            }
        },
        "/api/v1/courses/prefixes/": {
            "get": {
                "tags": ["Courses"],
                "summary": "List distinct department prefixes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/api/v1/courses/export": {
            "get": {
                "tags": ["Courses"],
                "summary": "Export the visible catalog",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf", "xlsx"]}
                ],
                "responses": {
                    "200": {"description": "Rendered document"},
                    "401": {"description": "Missing or invalid token"}
                }
            }
        },
        "/api/v1/auth/token": {
            "post": {
                "tags": ["Auth"],
                "summary": "Exchange admin credentials for a bearer token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TokenResponse"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "definitions": {
        "Schedule": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "day_of_week": {"type": "string"},
                "start_time": {"type": "string"},
                "end_time": {"type": "string"}
            }
        },
        "ScheduleGroup": {
            "type": "object",
            "properties": {
                "days": {"type": "string"},
                "time": {"type": "string"},
                "time_tbd": {"type": "boolean"},
                "dates": {"type": "string"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "schedule_ids": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "CourseResult": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "course_code": {"type": "string"},
                "course_prefix": {"type": "string"},
                "course_number": {"type": "string"},
                "course_name": {"type": "string"},
                "course_delivery_type": {"type": "string"},
                "delivery_badge": {"type": "string"},
                "prereqs": {"type": "string"},
                "hours": {"type": "string"},
                "fees": {"type": "string"},
                "course_description": {"type": "string"},
                "course_link": {"type": "string"},
                "schedules": {"type": "array", "items": {"$ref": "#/definitions/Schedule"}},
                "schedule_groups": {"type": "array", "items": {"$ref": "#/definitions/ScheduleGroup"}}
            }
        },
        "CoursePage": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "next": {"type": "string"},
                "previous": {"type": "string"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/CourseResult"}}
            }
        },
        "TokenRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["username", "password"]
        },
        "TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string"},
                "expires_at": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
