package config

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Treefile represents the structure of the grove.yaml tree file.
type Treefile struct {
	Version string             `yaml:"version" validate:"required,eq=1"`
	Root    string             `yaml:"root"    validate:"omitempty,nodename"`
	Nodes   map[string]NodeDTO `yaml:"nodes"   validate:"dive,keys,nodename,endkeys"`
}

// NodeDTO represents one node declaration in the tree file.
type NodeDTO struct {
	Children []string `yaml:"children" validate:"unique,dive,nodename"`
}

var nodeNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._/:-]*$`)

var treefileValidate *validator.Validate

func init() {
	treefileValidate = validator.New()
	_ = treefileValidate.RegisterValidation("nodename", validateNodeName)
}

func validateNodeName(fl validator.FieldLevel) bool {
	return nodeNamePattern.MatchString(fl.Field().String())
}
