// Package docs holds the OpenAPI document served at /swagger/*.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
		"/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Login",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.loginResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Login credentials",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.loginRequest"
						}
					}
				]
			}
		},
		"/change_password": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Change password",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.successResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Old and new password",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.changePasswordRequest"
						}
					}
				]
			}
		},
		"/me": {
			"get": {
				"tags": [
					"auth"
				],
				"summary": "Current user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.meResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/register": {
			"post": {
				"tags": [
					"users"
				],
				"summary": "Register a user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.successResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "User details",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.userRequest"
						}
					}
				]
			}
		},
		"/users": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "List users",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.listUsersResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/by-role": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "List users by role",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.usersByRoleResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/import": {
			"post": {
				"tags": [
					"users"
				],
				"summary": "Bulk import users",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.importResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Users to import",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/handler.userRequest"
							}
						}
					}
				]
			}
		},
		"/users/{user_id}": {
			"delete": {
				"tags": [
					"users"
				],
				"summary": "Delete a user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.successResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "User ID",
						"name": "user_id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/student/dashboard": {
			"get": {
				"tags": [
					"student"
				],
				"summary": "Student dashboard",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.studentDashboardResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/student/attendance": {
			"get": {
				"tags": [
					"student"
				],
				"summary": "Student attendance history",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.studentAttendanceResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/lecturer/dashboard": {
			"get": {
				"tags": [
					"lecturer"
				],
				"summary": "Lecturer dashboard",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.lecturerDashboardResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/lecturer/attendance": {
			"get": {
				"tags": [
					"lecturer"
				],
				"summary": "Marks taken by the lecturer",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.lecturerAttendanceResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"lecturer"
				],
				"summary": "Record attendance",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.recordAttendanceResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Attendance mark",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.recordAttendanceRequest"
						}
					}
				]
			}
		},
		"/health": {
			"get": {
				"tags": [
					"health"
				],
				"summary": "Liveness probe",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/health/ready": {
			"get": {
				"tags": [
					"health"
				],
				"summary": "Readiness probe",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.readinessResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/handler.readinessResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"handler.errorResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "error"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"handler.successResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"handler.loginRequest": {
			"type": "object",
			"required": [
				"user_id",
				"password"
			],
			"properties": {
				"user_id": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"handler.loginUser": {
			"type": "object",
			"properties": {
				"user_id": {
					"type": "string"
				},
				"role": {
					"$ref": "#/definitions/domain.Role"
				},
				"name": {
					"type": "string"
				}
			}
		},
		"handler.loginResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"token": {
					"type": "string"
				},
				"user": {
					"$ref": "#/definitions/handler.loginUser"
				}
			}
		},
		"handler.changePasswordRequest": {
			"type": "object",
			"required": [
				"old_password",
				"new_password"
			],
			"properties": {
				"old_password": {
					"type": "string"
				},
				"new_password": {
					"type": "string"
				}
			}
		},
		"handler.meResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"user": {
					"$ref": "#/definitions/domain.User"
				}
			}
		},
		"handler.userRequest": {
			"type": "object",
			"properties": {
				"user_id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"level": {
					"type": "integer"
				},
				"program": {
					"type": "string"
				},
				"department": {
					"type": "string"
				},
				"courses": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"levels": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				}
			}
		},
		"handler.listUsersResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"users": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.User"
					}
				}
			}
		},
		"handler.usersByRoleResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"users_by_role": {
					"$ref": "#/definitions/ports.UsersByRole"
				},
				"stats": {
					"$ref": "#/definitions/ports.RoleStats"
				}
			}
		},
		"handler.importResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"imported": {
					"type": "integer"
				},
				"errors": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"handler.studentDashboardResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"data": {
					"$ref": "#/definitions/ports.StudentDashboard"
				}
			}
		},
		"handler.studentAttendanceResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"attendance": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/ports.StudentAttendanceItem"
					}
				}
			}
		},
		"handler.lecturerDashboardResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"data": {
					"$ref": "#/definitions/ports.LecturerDashboard"
				}
			}
		},
		"handler.lecturerAttendanceResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"attendance": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/ports.LecturerAttendanceItem"
					}
				}
			}
		},
		"handler.recordAttendanceRequest": {
			"type": "object",
			"required": [
				"student_id",
				"course_id"
			],
			"properties": {
				"student_id": {
					"type": "string"
				},
				"course_id": {
					"type": "string"
				},
				"course_name": {
					"type": "string"
				},
				"status": {
					"type": "string",
					"enum": [
						"present",
						"absent",
						"late"
					]
				},
				"method": {
					"type": "string",
					"enum": [
						"manual",
						"qr_code"
					]
				},
				"recorded_at": {
					"type": "string"
				}
			}
		},
		"handler.recordAttendanceResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"record": {
					"$ref": "#/definitions/domain.AttendanceRecord"
				}
			}
		},
		"handler.dependencyStatus": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				}
			}
		},
		"handler.readinessResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"dependencies": {
					"type": "object",
					"additionalProperties": {
						"$ref": "#/definitions/handler.dependencyStatus"
					}
				}
			}
		},
		"domain.Role": {
			"type": "string",
			"enum": [
				"admin",
				"student",
				"lecturer",
				"examiner"
			]
		},
		"domain.User": {
			"type": "object",
			"properties": {
				"user_id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"role": {
					"$ref": "#/definitions/domain.Role"
				},
				"level": {
					"type": "integer"
				},
				"program": {
					"type": "string"
				},
				"department": {
					"type": "string"
				},
				"courses": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"levels": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				}
			}
		},
		"domain.AttendanceRecord": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"student_id": {
					"type": "string"
				},
				"student_name": {
					"type": "string"
				},
				"student_email": {
					"type": "string"
				},
				"course_id": {
					"type": "string"
				},
				"course_name": {
					"type": "string"
				},
				"lecturer_id": {
					"type": "string"
				},
				"lecturer": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"method": {
					"type": "string"
				},
				"recorded_at": {
					"type": "string"
				}
			}
		},
		"ports.RoleStats": {
			"type": "object",
			"properties": {
				"total_students": {
					"type": "integer"
				},
				"total_lecturers": {
					"type": "integer"
				},
				"total_examiners": {
					"type": "integer"
				},
				"total_admins": {
					"type": "integer"
				},
				"total_users": {
					"type": "integer"
				}
			}
		},
		"ports.UsersByRole": {
			"type": "object",
			"properties": {
				"students": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.User"
					}
				},
				"lecturers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.User"
					}
				},
				"examiners": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.User"
					}
				},
				"admins": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.User"
					}
				}
			}
		},
		"ports.StudentCourse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"lecturer": {
					"type": "string"
				},
				"schedule": {
					"type": "string"
				},
				"room": {
					"type": "string"
				}
			}
		},
		"ports.TodayAttendance": {
			"type": "object",
			"properties": {
				"course": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"time": {
					"type": "string"
				}
			}
		},
		"ports.AttendanceStats": {
			"type": "object",
			"properties": {
				"monthly": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				},
				"courses": {
					"type": "array",
					"items": {
						"type": "integer"
					}
				}
			}
		},
		"ports.StudentDashboard": {
			"type": "object",
			"properties": {
				"courses": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/ports.StudentCourse"
					}
				},
				"today_attendance": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/ports.TodayAttendance"
					}
				},
				"attendance_stats": {
					"$ref": "#/definitions/ports.AttendanceStats"
				}
			}
		},
		"ports.StudentAttendanceItem": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string"
				},
				"course": {
					"type": "string"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"ports.LecturerStats": {
			"type": "object",
			"properties": {
				"total_students": {
					"type": "integer"
				},
				"total_present": {
					"type": "integer"
				},
				"total_absent": {
					"type": "integer"
				},
				"total_courses": {
					"type": "integer"
				}
			}
		},
		"ports.LecturerCourse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"students": {
					"type": "integer"
				},
				"attendance_rate": {
					"type": "integer"
				}
			}
		},
		"ports.AbsenceRequest": {
			"type": "object",
			"properties": {
				"student_name": {
					"type": "string"
				},
				"reason": {
					"type": "string"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"ports.LecturerStudent": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"course": {
					"type": "string"
				},
				"attendance_rate": {
					"type": "integer"
				}
			}
		},
		"ports.LecturerDashboard": {
			"type": "object",
			"properties": {
				"stats": {
					"$ref": "#/definitions/ports.LecturerStats"
				},
				"courses": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/ports.LecturerCourse"
					}
				},
				"absence_requests": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/ports.AbsenceRequest"
					}
				},
				"students": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/ports.LecturerStudent"
					}
				}
			}
		},
		"ports.LecturerAttendanceItem": {
			"type": "object",
			"properties": {
				"student_name": {
					"type": "string"
				},
				"student_id": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"time": {
					"type": "string"
				},
				"method": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"course": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and the session token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Attendance API",
	Description:      "Role-based attendance management backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
