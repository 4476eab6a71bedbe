package config

// Schema is the JSON Schema for Pharos JSON configuration documents.
// YAML configs go through the same struct-level validation but skip
// schema checking.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "Pharos logging configuration",
  "type": "object",
  "properties": {
    "level": {
      "type": "string",
      "enum": ["debug", "info", "warn", "warning", "error", "fatal", "critical"]
    },
    "format": {
      "type": "string",
      "enum": ["text", "json", "structured"]
    },
    "name": { "type": "string" },
    "console": {
      "type": "object",
      "properties": {
        "enabled": { "type": "boolean" },
        "stream": { "type": "string", "enum": ["stdout", "stderr"] },
        "level": { "type": "string" },
        "format": { "type": "string" },
        "color": { "type": "boolean" }
      },
      "additionalProperties": false
    },
    "file": {
      "type": "object",
      "properties": {
        "enabled": { "type": "boolean" },
        "filename": { "type": "string" },
        "directory": { "type": "string" },
        "level": { "type": "string" },
        "format": { "type": "string" },
        "maxSizeMb": { "type": "integer", "minimum": 0 },
        "maxBackups": { "type": "integer", "minimum": 0 },
        "maxAgeDays": { "type": "integer", "minimum": 0 },
        "compress": { "type": "boolean" }
      },
      "additionalProperties": false
    },
    "performance": {
      "type": "object",
      "properties": {
        "enabled": { "type": "boolean" },
        "thresholdMs": { "type": "number", "minimum": 0 },
        "intervalSeconds": { "type": "number", "minimum": 0 },
        "trackMemory": { "type": "boolean" },
        "trackCpu": { "type": "boolean" },
        "trackDisk": { "type": "boolean" },
        "trackNetwork": { "type": "boolean" }
      },
      "additionalProperties": false
    },
    "request": {
      "type": "object",
      "properties": {
        "enabled": { "type": "boolean" },
        "logHeaders": { "type": "boolean" },
        "logBody": { "type": "boolean" },
        "logQueryParams": { "type": "boolean" },
        "logResponseTime": { "type": "boolean" },
        "logStatusCodes": { "type": "boolean" },
        "sensitiveHeaders": { "type": "array", "items": { "type": "string" } }
      },
      "additionalProperties": false
    },
    "training": {
      "type": "object",
      "properties": {
        "enabled": { "type": "boolean" },
        "logMetrics": { "type": "boolean" },
        "logCheckpoints": { "type": "boolean" },
        "logValidation": { "type": "boolean" },
        "logHyperparameters": { "type": "boolean" }
      },
      "additionalProperties": false
    },
    "trackUserId": { "type": "boolean" },
    "trackSessionId": { "type": "boolean" },
    "trackRequestId": { "type": "boolean" },
    "extraFields": {
      "type": "object",
      "additionalProperties": { "type": "string" }
    }
  },
  "additionalProperties": false
}`
