package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Workroster API",
        "description": "Weekly work schedule management: rosters, change requests, bulk import/export",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Authentication and session"},
        {"name": "Users", "description": "User directory"},
        {"name": "Schedules", "description": "Weekly schedule store"},
        {"name": "Requests", "description": "Schedule change request lifecycle"},
        {"name": "Roster", "description": "Bulk import and export"},
        {"name": "Configuration", "description": "Application settings"}
    ],
    "paths": {
        "/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate with username and password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/init-admin": {
            "post": {
                "tags": ["Auth"],
                "summary": "Create the bootstrap admin account when none exists",
                "responses": {
                    "200": {"description": "Admin already exists"},
                    "201": {"description": "Admin created"}
                }
            }
        },
        "/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current user profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List all users",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Users"],
                "summary": "Create a user account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Username or email already in use"}
                }
            }
        },
        "/employees": {
            "get": {
                "tags": ["Users"],
                "summary": "List employee accounts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/services": {
            "get": {
                "tags": ["Users"],
                "summary": "List distinct service labels",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules": {
            "get": {
                "tags": ["Schedules"],
                "summary": "List weekly schedules visible to the caller",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/{userId}": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Get one employee's weekly schedule",
                "parameters": [
                    {"name": "userId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Schedule not found"}
                }
            },
            "put": {
                "tags": ["Schedules"],
                "summary": "Replace all seven days of an employee's schedule",
                "parameters": [
                    {"name": "userId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertWeekRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid day times"}
                }
            }
        },
        "/schedules/{userId}/days/{day}": {
            "put": {
                "tags": ["Schedules"],
                "summary": "Replace the four time fields of a single day",
                "parameters": [
                    {"name": "userId", "in": "path", "required": true, "type": "string"},
                    {"name": "day", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertDayRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid day or time values"}
                }
            }
        },
        "/my-schedule": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Get the authenticated user's weekly schedule",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/my-schedule/export": {
            "get": {
                "tags": ["Roster"],
                "summary": "Export the authenticated user's schedule",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Exported payload"}
                }
            }
        },
        "/schedule-requests": {
            "get": {
                "tags": ["Requests"],
                "summary": "List schedule requests visible to the caller",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Requests"],
                "summary": "Submit a day-off or schedule-change request",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateScheduleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/pending-requests": {
            "get": {
                "tags": ["Requests"],
                "summary": "List the pending review queue, oldest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule-requests/{id}/respond": {
            "put": {
                "tags": ["Requests"],
                "summary": "Approve or reject a pending request",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DecideScheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Request not found"},
                    "409": {"description": "Request already decided"}
                }
            }
        },
        "/export-schedules": {
            "get": {
                "tags": ["Roster"],
                "summary": "Export every employee's schedule as CSV",
                "responses": {
                    "200": {"description": "CSV payload"}
                }
            }
        },
        "/import-schedules": {
            "post": {
                "tags": ["Roster"],
                "summary": "Bulk import schedules from an uploaded CSV file",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ImportResult"}},
                    "400": {"description": "Unreadable file"}
                }
            }
        },
        "/download-template": {
            "get": {
                "tags": ["Roster"],
                "summary": "Download the import template",
                "responses": {
                    "200": {"description": "CSV template"}
                }
            }
        },
        "/configuration": {
            "get": {
                "tags": ["Configuration"],
                "summary": "Read application settings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Configuration"],
                "summary": "Update application settings",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateConfigurationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["username", "password"]
        },
        "CreateUserRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "full_name": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "coordinator", "employee"]},
                "service": {"type": "string"}
            },
            "required": ["username", "email", "password", "full_name", "role"]
        },
        "DayTimes": {
            "type": "object",
            "properties": {
                "start": {"type": "string"},
                "break_start": {"type": "string"},
                "break_end": {"type": "string"},
                "end": {"type": "string"}
            }
        },
        "UpsertDayRequest": {
            "$ref": "#/definitions/DayTimes"
        },
        "UpsertWeekRequest": {
            "type": "object",
            "properties": {
                "service": {"type": "string"},
                "monday": {"$ref": "#/definitions/DayTimes"},
                "tuesday": {"$ref": "#/definitions/DayTimes"},
                "wednesday": {"$ref": "#/definitions/DayTimes"},
                "thursday": {"$ref": "#/definitions/DayTimes"},
                "friday": {"$ref": "#/definitions/DayTimes"},
                "saturday": {"$ref": "#/definitions/DayTimes"},
                "sunday": {"$ref": "#/definitions/DayTimes"}
            }
        },
        "CreateScheduleRequest": {
            "type": "object",
            "properties": {
                "request_type": {"type": "string", "enum": ["day_off", "schedule_change"]},
                "requested_date": {"type": "string"},
                "current_schedule": {"type": "string"},
                "requested_schedule": {"type": "string"},
                "reason": {"type": "string"}
            },
            "required": ["request_type", "requested_date", "reason"]
        },
        "DecideScheduleRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["approved", "rejected"]},
                "response": {"type": "string"}
            },
            "required": ["status", "response"]
        },
        "UpdateConfigurationRequest": {
            "type": "object",
            "properties": {
                "background_color": {"type": "string"}
            },
            "required": ["background_color"]
        },
        "ImportResult": {
            "type": "object",
            "properties": {
                "processed": {"type": "integer"},
                "applied": {"type": "integer"},
                "skipped": {"type": "integer"},
                "errors": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/RowError"}
                }
            }
        },
        "RowError": {
            "type": "object",
            "properties": {
                "row": {"type": "integer"},
                "reason": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
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
