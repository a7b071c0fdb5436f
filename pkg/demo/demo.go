// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package demo holds the arithmetic sample used by the documentation demos.
package demo

// HelloWorld returns a greeting message.
func HelloWorld() string {
	return "Hello, World!"
}

// AddNumbers returns the sum of a and b.
func AddNumbers(a, b int) int {
	return a + b
}

// Calculator keeps the result of its last calculation.
type Calculator struct {
	result float64
}

// NewCalculator creates a calculator with a zero result.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Multiply stores and returns the product of x and y.
func (c *Calculator) Multiply(x, y float64) float64 {
	c.result = x * y
	return c.result
}

// Result returns the last calculated result.
func (c *Calculator) Result() float64 {
	return c.result
}
