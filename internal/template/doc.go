// Package template loads, normalizes and writes ROS infrastructure templates.
//
// A template lives in a project directory as template.yml (or template.yaml)
// and declares the resources a deployment creates:
//
//	ROSTemplateFormatVersion: "2015-09-01"
//	Transform: "Aliyun::Serverless-2018-04-03"
//	Resources:
//	  demo:
//	    Type: "Aliyun::Serverless::Service"
//
// # Normalization
//
// Load always hands back a document with a format version, a resource map
// and the serverless transform declared exactly once. An empty file becomes
// the default document; a non-empty file without a format version is
// rejected with ErrMalformedTemplate.
package template
