package main

func red(s string) string    { return "\x1b[91m" + s + "\x1b[0m" }
func green(s string) string  { return "\x1b[92m" + s + "\x1b[0m" }
func yellow(s string) string { return "\x1b[93m" + s + "\x1b[0m" }
func blue(s string) string   { return "\x1b[94m" + s + "\x1b[0m" }
