package template

// CheckResource returns a *ResourceCollisionError when name is already
// declared under Resources. An entry with a null descriptor does not count.
func (d *Document) CheckResource(name string) error {
	res, exists := d.Resources[name]
	if !exists || res == nil {
		return nil
	}
	return &ResourceCollisionError{Name: name, Type: res.Type()}
}

// AddResource registers res under name after checking for a collision.
func (d *Document) AddResource(name string, res Resource) error {
	if err := d.CheckResource(name); err != nil {
		return err
	}
	if d.Resources == nil {
		d.Resources = make(map[string]Resource)
	}
	d.Resources[name] = res
	return nil
}
