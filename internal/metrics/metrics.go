package metrics

const Namespace = "countdown"
