package models

// ProductVariants groups the selectable options of a product, e.g.
// {Tipo: "Sabor", Opciones: ["Fresa", "Mango"]}.
type ProductVariants struct {
	Tipo     string   `json:"tipo" bson:"tipo"`
	Opciones []string `json:"opciones" bson:"opciones"`
}

// Product is a catalog entry. PrecioFinal is the price actually charged;
// when it is unset it defaults to PrecioOriginal.
type Product struct {
	ID             int              `json:"id" bson:"id"`
	Nombre         string           `json:"nombre" bson:"nombre"`
	Categoria      string           `json:"categoria" bson:"categoria"`
	PrecioCompra   int              `json:"precioCompra" bson:"precioCompra"`
	PrecioOriginal int              `json:"precioOriginal" bson:"precioOriginal"`
	PrecioFinal    int              `json:"precioFinal" bson:"precioFinal"`
	Descripcion    string           `json:"descripcion" bson:"descripcion"`
	Imagen         string           `json:"imagen" bson:"imagen"`
	Imagenes       []string         `json:"imagenes,omitempty" bson:"imagenes,omitempty"`
	Etiqueta       *string          `json:"etiqueta" bson:"etiqueta"`
	Stock          int              `json:"stock" bson:"stock"`
	Variantes      *ProductVariants `json:"variantes,omitempty" bson:"variantes,omitempty"`
}

// EtiquetaOptions are the merchandising labels the admin UI offers.
var EtiquetaOptions = []string{"Nuevo", "Popular", "Más vendido", "Recomendado"}
